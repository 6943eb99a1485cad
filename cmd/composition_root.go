package cmd

import (
	"context"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSkipOrderCommandHandler() commands.SkipOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSkipOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkMissingPartsCommandHandler() commands.MarkMissingPartsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkMissingPartsCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkShippedCommandHandler() commands.MarkShippedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkShippedCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrdersCommandHandler() commands.DeleteOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrdersCommandHandler(f, NoopCacheInvalidator{})
}

func (c *CompositionRoot) CreateRecordScanCommandHandler() commands.RecordScanCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordScanCommandHandler(f)
}

func (c *CompositionRoot) CreateUndoLastTechScanCommandHandler() commands.UndoLastTechScanCommandHandler {
	var f commands.StationUoWFactory = FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUndoLastTechScanCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteTechScansCommandHandler() commands.DeleteTechScansCommandHandler {
	var f commands.StationUoWFactory = FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTechScansCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncExceptionsCommandHandler() commands.SyncExceptionsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncExceptionsCommandHandler(f)
}

func (c *CompositionRoot) CreateNormalizeStatusesCommandHandler() commands.NormalizeStatusesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNormalizeStatusesCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyOrderByTrackingQueryHandler() queries.VerifyOrderByTrackingQueryHandler {
	return queries.NewVerifyOrderByTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTechScanStateQueryHandler() queries.GetTechScanStateQueryHandler {
	return queries.NewGetTechScanStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnshippedOrdersQueryHandler() queries.GetUnshippedOrdersQueryHandler {
	return queries.NewGetUnshippedOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// NoopCacheInvalidator satisfies the cache invalidation port when no derived
// view cache is deployed.
type NoopCacheInvalidator struct{}

func (NoopCacheInvalidator) Invalidate(_ context.Context, _ []string) error {
	return nil
}

var _ ports.CacheInvalidator = NoopCacheInvalidator{}
