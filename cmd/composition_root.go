package cmd

import (
	"log/slog"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each handler gets
// a unit of work factory scoped to the repositories it actually needs.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.StatusChangedPublisher
	directory  ports.RoleDirectory
	geocoder   ports.Geocoder
	config     Config
}

// NewCompositionRoot assembles the application graph from the shared
// infrastructure handles.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.StatusChangedPublisher,
	directory ports.RoleDirectory,
	geocoder ports.Geocoder,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		directory:  directory,
		geocoder:   geocoder,
		config:     config,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// CreatePlaceOrderCommandHandler builds the order placement handler.
func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher)
}

// CreateAdvanceOrderCommandHandler builds the kitchen progression handler.
func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

// CreateAssignRiderCommandHandler builds the rider assignment handler.
func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.AssignRiderUoWFactory = FuncAssignRiderUoWFactory(func() commands.AssignRiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.publisher)
}

// CreateAcceptPickupCommandHandler builds the pickup confirmation handler.
func (c *CompositionRoot) CreateAcceptPickupCommandHandler() commands.AcceptPickupCommandHandler {
	return commands.NewAcceptPickupCommandHandler(c.orderUoWFactory(), c.publisher)
}

// CreateDeclinePickupCommandHandler builds the pickup decline handler.
func (c *CompositionRoot) CreateDeclinePickupCommandHandler() commands.DeclinePickupCommandHandler {
	return commands.NewDeclinePickupCommandHandler(c.orderUoWFactory(), c.publisher)
}

// CreateCancelOrderCommandHandler builds the cancellation handler.
func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

// CreateAcknowledgePickupCommandHandler builds the notice acknowledgement
// handler.
func (c *CompositionRoot) CreateAcknowledgePickupCommandHandler() commands.AcknowledgePickupCommandHandler {
	return commands.NewAcknowledgePickupCommandHandler(c.orderUoWFactory())
}

// CreateGetCustomerOrdersQueryHandler builds the customer history handler.
func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB, c.geocoder)
}

// CreateGetRestaurantOrdersQueryHandler builds the restaurant board handler.
func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

// CreateGetAvailableRidersQueryHandler builds the free rider list handler.
func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.gormDB)
}

// CreateGetUnacknowledgedPickupsQueryHandler builds the pending notice
// handler.
func (c *CompositionRoot) CreateGetUnacknowledgedPickupsQueryHandler() queries.GetUnacknowledgedPickupsQueryHandler {
	return queries.NewGetUnacknowledgedPickupsQueryHandler(c.gormDB)
}

// CreateWatcherRegistry builds the per-session pickup watcher registry
// reading through a non-transactional order repository.
func (c *CompositionRoot) CreateWatcherRegistry(logger *slog.Logger) *notifications.WatcherRegistry {
	repo := c.uowFactory.Create().OrderRepository()
	return notifications.NewWatcherRegistry(repo, c.config.NotifyPollInterval, logger)
}

// CreateServer builds the HTTP server with every handler wired.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.directory,
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateAssignRiderCommandHandler(),
		c.CreateAcceptPickupCommandHandler(),
		c.CreateDeclinePickupCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAcknowledgePickupCommandHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetRestaurantOrdersQueryHandler(),
		c.CreateGetAvailableRidersQueryHandler(),
		c.CreateGetUnacknowledgedPickupsQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncAssignRiderUoWFactory func() commands.AssignRiderUoW

func (f FuncAssignRiderUoWFactory) Create() commands.AssignRiderUoW {
	return f()
}
