package kernel

import (
	"strings"
	"unicode"
)

// canonicalCap is the maximum significant length of a canonical tracking key.
// Some carrier formats embed longer strings with a fixed-length significant
// suffix, so comparisons use at most the trailing 18 characters.
const canonicalCap = 18

// last8Len is the number of trailing digits used for fuzzy label matching.
const last8Len = 8

// TrackingKey is a value object that canonicalizes a raw tracking-number scan
// into comparable keys. Physical labels arrive with varying prefixes, suffixes
// and OCR noise; station logs are linked to orders only by best-effort key
// comparison, never by a stored foreign key, so every comparison in the system
// goes through this type.
//
// TrackingKey is pure and deterministic: the same input always yields the same
// keys, and construction never fails. An empty or whitespace-only input yields
// an empty key for all three forms.
//
// Example:
//
//	key := kernel.NewTrackingKey(" 1Z999AA10123456784 ")
//	key.Last8()       // "23456784"
//	key.Canonical()   // "1Z999AA10123456784"
//	key.Canonical18() // "1Z999AA10123456784"
type TrackingKey struct {
	raw string
}

// NewTrackingKey creates a TrackingKey from a raw scanned string.
// Leading and trailing whitespace is discarded; everything else is preserved
// so the original scan can still be stored verbatim.
func NewTrackingKey(raw string) TrackingKey {
	return TrackingKey{raw: strings.TrimSpace(raw)}
}

// Raw returns the trimmed original scan string.
func (k TrackingKey) Raw() string {
	return k.raw
}

// IsZero reports whether the key was built from an empty or whitespace-only
// input.
func (k TrackingKey) IsZero() bool {
	return k.raw == ""
}

// Last8 returns the last 8 characters of the digit-only projection of the
// scan. When the scan contains fewer than 8 digits the trimmed original
// string is returned unchanged; comparing whole strings is the fallback
// tolerance for short or fully alphabetic labels.
func (k TrackingKey) Last8() string {
	if k.raw == "" {
		return ""
	}

	digits := projectDigits(k.raw)
	if len(digits) >= last8Len {
		return digits[len(digits)-last8Len:]
	}
	return k.raw
}

// Canonical returns the uppercased, alphanumeric-only projection of the full
// scan.
func (k TrackingKey) Canonical() string {
	return projectAlnumUpper(k.raw)
}

// Canonical18 returns Canonical truncated to its final 18 characters when
// longer.
func (k TrackingKey) Canonical18() string {
	canonical := k.Canonical()
	if len(canonical) > canonicalCap {
		return canonical[len(canonical)-canonicalCap:]
	}
	return canonical
}

// Matches reports whether two keys agree on their last-8 projection.
func (k TrackingKey) Matches(other TrackingKey) bool {
	return !k.IsZero() && k.Last8() == other.Last8()
}

func projectDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// projectAlnumUpper keeps only ASCII letters and digits, uppercasing letters.
// Non-ASCII runes are dropped, matching the label formats the scanners emit.
func projectAlnumUpper(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
