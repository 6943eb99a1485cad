package kernel_test

import (
	"fmt"
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingKey_Last8(t *testing.T) {
	t.Run("should take last 8 digits of digit-only projection", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{"1Z999AA10123456784", "23456784"},
			{"999AA10123456784", "23456784"},
			{"12345678", "12345678"},
			{"TBA123456789012", "56789012"},
			{"  9400 1000 0000 0000 0000 12  ", "00000012"},
			{"a1b2c3d4e5f6g7h8i9", "23456789"},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				got := kernel.NewTrackingKey(tt.input).Last8()
				assert.Len(t, got, 8)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("should fall back to trimmed input below 8 digits", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{"1234567", "1234567"},
			{"ABC-123", "ABC-123"},
			{"  AB12  ", "AB12"},
			{"NODIGITS", "NODIGITS"},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				assert.Equal(t, tt.want, kernel.NewTrackingKey(tt.input).Last8())
			})
		}
	})

	t.Run("should yield empty key for empty or whitespace input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			key := kernel.NewTrackingKey(input)
			assert.True(t, key.IsZero())
			assert.Empty(t, key.Last8())
			assert.Empty(t, key.Canonical())
			assert.Empty(t, key.Canonical18())
		}
	})

	t.Run("length is exactly 8 for any input with at least 8 digits", func(t *testing.T) {
		for digits := 8; digits <= 30; digits++ {
			input := strings.Repeat("7", digits)
			assert.Len(t, kernel.NewTrackingKey(input).Last8(), 8,
				"input with %d digits", digits)
		}
	})
}

func TestTrackingKey_Canonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1Z999AA10123456784", "1Z999AA10123456784"},
		{"1z999aa10123456784", "1Z999AA10123456784"},
		{"tba-123 456/789", "TBA123456789"},
		{"  9400 1000 0000  ", "940010000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.NewTrackingKey(tt.input).Canonical())
		})
	}
}

func TestTrackingKey_Canonical18(t *testing.T) {
	t.Run("should keep short canonical keys unchanged", func(t *testing.T) {
		key := kernel.NewTrackingKey("TBA123456789")
		assert.Equal(t, "TBA123456789", key.Canonical18())
	})

	t.Run("should cap at trailing 18 characters", func(t *testing.T) {
		key := kernel.NewTrackingKey("XX1Z999AA10123456784")
		got := key.Canonical18()
		require.Len(t, got, 18)
		assert.Equal(t, "1Z999AA10123456784", got)
	})

	t.Run("exactly 18 characters passes through", func(t *testing.T) {
		key := kernel.NewTrackingKey("1Z999AA10123456784")
		assert.Equal(t, "1Z999AA10123456784", key.Canonical18())
	})
}

func TestTrackingKey_Matches(t *testing.T) {
	t.Run("keys sharing trailing 8 digits match", func(t *testing.T) {
		a := kernel.NewTrackingKey("1Z999AA10123456784")
		b := kernel.NewTrackingKey("999AA10123456784")
		assert.True(t, a.Matches(b))
		assert.True(t, b.Matches(a))
	})

	t.Run("zero key never matches", func(t *testing.T) {
		zero := kernel.NewTrackingKey("")
		assert.False(t, zero.Matches(zero))
	})

	t.Run("different suffixes do not match", func(t *testing.T) {
		a := kernel.NewTrackingKey("1Z999AA10123456784")
		b := kernel.NewTrackingKey("1Z999AA10100000000")
		assert.False(t, a.Matches(b))
	})
}

func TestTrackingKey_Determinism(t *testing.T) {
	inputs := []string{"1Z999AA10123456784", "ABC-123", "", "  420 12345 9400 1100  "}
	for i, input := range inputs {
		t.Run(fmt.Sprintf("input_%d", i), func(t *testing.T) {
			first := kernel.NewTrackingKey(input)
			second := kernel.NewTrackingKey(input)
			assert.Equal(t, first.Last8(), second.Last8())
			assert.Equal(t, first.Canonical(), second.Canonical())
			assert.Equal(t, first.Canonical18(), second.Canonical18())
		})
	}
}

func TestStaffID(t *testing.T) {
	t.Run("accepts positive ids", func(t *testing.T) {
		id, err := kernel.NewStaffID(7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Int64())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects zero and negative ids", func(t *testing.T) {
		for _, raw := range []int64{0, -1, -99} {
			_, err := kernel.NewStaffID(raw)
			require.Error(t, err)
		}
	})
}
