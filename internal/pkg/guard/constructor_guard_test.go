package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("scan event not constructed")
		require.NoError(t, g.Validate(customError))

		// Nil error falls back to the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the pattern every command in
// this codebase follows: construct through the factory function, embed the
// guard, and reject zero values at Validate time.
func TestConstructorGuardUsageExample(t *testing.T) {
	// A miniature of the real scan commands
	type scanLabel struct {
		tracking string
		station  string
		guard    guard.ConstructorGuard
	}

	var errScanLabelNotConstructed = errors.New("scanLabel must be created via newScanLabel")

	newScanLabel := func(tracking, station string) (scanLabel, error) {
		if tracking == "" {
			return scanLabel{}, errors.New("tracking is required")
		}
		if station == "" {
			return scanLabel{}, errors.New("station is required")
		}
		return scanLabel{
			tracking: tracking,
			station:  station,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateScanLabel := func(s scanLabel) error {
		return s.guard.Validate(errScanLabelNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		label, err := newScanLabel("1Z999AA10123456784", "packer")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateScanLabel(label))
		assert.Equal(t, "1Z999AA10123456784", label.tracking)
		assert.Equal(t, "packer", label.station)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var label scanLabel // zero value

		// When
		err := validateScanLabel(label)

		// Then
		require.Error(t, err)
		assert.Equal(t, errScanLabelNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newScanLabel("", "packer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tracking is required")

		_, err = newScanLabel("1Z999AA10123456784", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "station is required")
	})
}

// TestConstructorGuardPerCommandErrors verifies a constructed guard passes no
// matter which command's sentinel it is asked to report.
func TestConstructorGuardPerCommandErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "order_command_sentinel",
			expectedError: errors.New("CreateOrderCommand must be created via NewCreateOrderCommand constructor"),
		},
		{
			name:          "scan_command_sentinel",
			expectedError: errors.New("RecordScanCommand must be created via NewRecordScanCommand constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			g := guard.NewConstructorGuard()

			// When
			err := g.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardValueSemantics verifies the guard survives being copied,
// which the value-type commands rely on.
func TestConstructorGuardValueSemantics(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("not constructed")

	copied := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, copied.Validate(testError))
}
