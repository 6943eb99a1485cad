package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stationlog"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredEntry(t *testing.T, id int64, eventTime time.Time, consumed bool) *stationlog.Entry {
	t.Helper()
	operator, _ := kernel.NewStaffID(4)
	e, err := stationlog.RestoreEntry(id, stationlog.Packer, "1Z999AA10123456784", "", "", operator, eventTime, consumed)
	require.NoError(t, err)
	return e
}

func TestReconciler_BestEntry(t *testing.T) {
	r := services.NewReconciler()
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	t.Run("most recent event wins", func(t *testing.T) {
		older := restoredEntry(t, 1, base, false)
		newer := restoredEntry(t, 2, base.Add(time.Hour), false)

		best := r.BestEntry([]*stationlog.Entry{older, newer})
		require.NotNil(t, best)
		assert.Equal(t, int64(2), best.ID())
	})

	t.Run("highest id breaks timestamp ties", func(t *testing.T) {
		first := restoredEntry(t, 7, base, false)
		second := restoredEntry(t, 9, base, false)

		best := r.BestEntry([]*stationlog.Entry{first, second})
		require.NotNil(t, best)
		assert.Equal(t, int64(9), best.ID())
	})

	t.Run("consumed entries are excluded", func(t *testing.T) {
		consumed := restoredEntry(t, 3, base.Add(time.Hour), true)
		available := restoredEntry(t, 2, base, false)

		best := r.BestEntry([]*stationlog.Entry{consumed, available})
		require.NotNil(t, best)
		assert.Equal(t, int64(2), best.ID())
	})

	t.Run("nil when nothing qualifies", func(t *testing.T) {
		consumed := restoredEntry(t, 3, base, true)
		assert.Nil(t, r.BestEntry([]*stationlog.Entry{consumed, nil}))
		assert.Nil(t, r.BestEntry(nil))
	})
}

