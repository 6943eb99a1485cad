// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StationLogRepoFactory provides access to the station log repository
	// within a transaction.
	StationLogRepoFactory interface {
		StationLogRepository() ports.StationLogRepository
	}

	// ExceptionRepoFactory provides access to the exception repository
	// within a transaction.
	ExceptionRepoFactory interface {
		ExceptionRepository() ports.ExceptionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StationUoW manages transactions for station-log-only operations.
	StationUoW interface {
		TxManager
		StationLogRepoFactory
	}

	// StationUoWFactory creates new station log unit of work instances.
	StationUoWFactory interface {
		Create() StationUoW
	}

	// UoW manages transactions spanning orders, station logs and staged
	// exceptions. Used by the reconciliation and merge operations.
	UoW interface {
		TxManager
		OrderRepoFactory
		StationLogRepoFactory
		ExceptionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
