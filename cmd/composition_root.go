package cmd

import (
	"log/slog"

	adapterhttp "tableservice/internal/adapters/in/http"
	"tableservice/internal/adapters/in/ws"
	"tableservice/internal/adapters/out/postgres"
	"tableservice/internal/broadcast"
	"tableservice/internal/core/application/usecases/commands"
	"tableservice/internal/core/application/usecases/queries"
	"tableservice/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *broadcast.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        broadcast.NewHub(logger),
		logger:     logger,
	}
}

// Hub exposes the broadcast hub for lifecycle management by the caller.
func (c *CompositionRoot) Hub() *broadcast.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTableStatusCommandHandler() commands.UpdateTableStatusCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTableStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedDataCommandHandler() commands.SeedDataCommandHandler {
	var f commands.SeedUoWFactory = FuncSeedUoWFactory(func() commands.SeedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedDataCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTablesQueryHandler() queries.GetTablesQueryHandler {
	return queries.NewGetTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuCategoriesQueryHandler() queries.GetMenuCategoriesQueryHandler {
	return queries.NewGetMenuCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCreateTableCommandHandler(),
		c.CreateUpdateTableStatusCommandHandler(),
		c.CreateCreateMenuItemCommandHandler(),
		c.CreateSeedDataCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetTablesQueryHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetMenuCategoriesQueryHandler(),
		c.CreateGetDashboardStatsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateWebsocketHandler() *ws.Handler {
	return ws.NewHandler(c.hub, c.logger)
}

func (c *CompositionRoot) CreateKeepaliveJob() *jobs.KeepaliveJob {
	return jobs.NewKeepaliveJob(c.hub, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}
