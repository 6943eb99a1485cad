package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate canonical statuses", func(t *testing.T) {
		valid := []order.Status{
			order.Unassigned,
			order.Assigned,
			order.MissingParts,
			order.Tested,
			order.Packed,
			order.Shipped,
		}

		for _, status := range valid {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown tokens", func(t *testing.T) {
		invalid := []order.Status{"", "uassigned", "completed", "SHIPPED"}

		for _, status := range invalid {
			t.Run(fmt.Sprintf("%q", string(status)), func(t *testing.T) {
				err := status.Validate()
				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestNormalizeToken(t *testing.T) {
	t.Run("heals the legacy typo", func(t *testing.T) {
		got, err := order.NormalizeToken("uassigned")
		require.NoError(t, err)
		assert.Equal(t, order.Unassigned, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		first, err := order.NormalizeToken("uassigned")
		require.NoError(t, err)

		second, err := order.NormalizeToken(first.String())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("passes canonical tokens through", func(t *testing.T) {
		for raw := range map[string]struct{}{
			"unassigned": {}, "assigned": {}, "missing_parts": {},
			"tested": {}, "packed": {}, "shipped": {},
		} {
			got, err := order.NormalizeToken(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, got.String())
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		_, err := order.NormalizeToken("cancelled")
		require.Error(t, err)
	})
}

func TestInferStatus(t *testing.T) {
	tests := []struct {
		name  string
		facts order.StatusFacts
		want  order.Status
	}{
		{"no facts", order.StatusFacts{}, order.Unassigned},
		{"tester assigned", order.StatusFacts{TesterAssigned: true}, order.Assigned},
		{"packer assigned", order.StatusFacts{PackerAssigned: true}, order.Assigned},
		{"out of stock", order.StatusFacts{TesterAssigned: true, OutOfStock: true}, order.MissingParts},
		{"test event", order.StatusFacts{TesterAssigned: true, TestEvent: true}, order.Tested},
		{"test event dominates out of stock", order.StatusFacts{OutOfStock: true, TestEvent: true}, order.Tested},
		{"pack event", order.StatusFacts{TestEvent: true, PackEvent: true}, order.Packed},
		{"shipped dominates everything", order.StatusFacts{
			TesterAssigned: true, PackerAssigned: true, OutOfStock: true,
			TestEvent: true, PackEvent: true, Shipped: true,
		}, order.Shipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.InferStatus(tt.facts))
		})
	}

	t.Run("is deterministic", func(t *testing.T) {
		facts := order.StatusFacts{TesterAssigned: true, PackEvent: true}
		assert.Equal(t, order.InferStatus(facts), order.InferStatus(facts))
	})
}
