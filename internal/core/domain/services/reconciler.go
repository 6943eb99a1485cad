package services

import (
	"fulfillment/internal/core/domain/model/stationlog"
)

// Reconciler links physical scan events back to orders. The stores do the
// coarse suffix filtering; the Reconciler owns the tie-break between
// competing log entries, so the ordering rule is testable in one place.
type Reconciler struct{}

// NewReconciler creates a Reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// BestEntry picks the authoritative entry among candidates that matched a
// tracking suffix: consumed entries are skipped, then the most recent event
// time wins, then the highest internal id. Returns nil when no candidate
// qualifies.
func (r *Reconciler) BestEntry(entries []*stationlog.Entry) *stationlog.Entry {
	var best *stationlog.Entry
	for _, e := range entries {
		if e == nil || e.Consumed() {
			continue
		}
		if best == nil || moreRecent(e, best) {
			best = e
		}
	}
	return best
}

func moreRecent(a, b *stationlog.Entry) bool {
	if !a.EventTime().Equal(b.EventTime()) {
		return a.EventTime().After(b.EventTime())
	}
	return a.ID() > b.ID()
}
