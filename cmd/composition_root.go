package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/ws"
	"storefront/internal/adapters/out/amqp"
	"storefront/internal/adapters/out/keyedstore/menurepo"
	"storefront/internal/adapters/out/keyedstore/orderrepo"
	"storefront/internal/adapters/out/memstore"
	"storefront/internal/adapters/out/redisstore"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
)

// noopTransport is the transport for poll mode: clients reconcile state by
// polling the REST API, so nothing is pushed.
type noopTransport struct{}

func (noopTransport) Publish(_ context.Context, _ ports.Event) error { return nil }

// CompositionRoot assembles the application object graph from the config:
// store, repositories, notification transport, handlers, simulator, server.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orderRepo *orderrepo.Repository
	menuRepo  *menurepo.Repository

	transport ports.NotificationTransport
	wsHandler http.Handler
	amqpConn  *amqp.Connection

	simulator *jobs.ProgressionSimulator
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{config: config, logger: logger}

	store, err := root.createStore()
	if err != nil {
		return nil, err
	}
	root.orderRepo = orderrepo.New(store)
	root.menuRepo = menurepo.New(store)

	if err = root.createTransport(); err != nil {
		return nil, err
	}

	root.simulator = jobs.NewProgressionSimulator(
		root.orderRepo,
		root.createUpdateOrderStatusCommandHandler(),
		config.StatusDelay,
		logger,
	)

	return root, nil
}

func (c *CompositionRoot) createStore() (ports.KeyedStore, error) {
	switch c.config.StoreDriver {
	case "memory":
		return memstore.New(), nil
	case "redis":
		return redisstore.New(redisstore.NewClient(c.config.RedisAddr, c.config.RedisPassword)), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.config.StoreDriver)
	}
}

func (c *CompositionRoot) createTransport() error {
	switch c.config.NotifyMode {
	case "push":
		hub := ws.NewHub(c.logger)
		c.transport = hub
		c.wsHandler = hub
	case "amqp":
		conn, err := amqp.Dial(c.config.AMQPURL)
		if err != nil {
			return fmt.Errorf("amqp dial: %w", err)
		}
		c.amqpConn = conn
		c.transport = amqp.NewPublisher(conn)
	case "poll":
		c.transport = noopTransport{}
	default:
		return fmt.Errorf("unknown notify mode %q", c.config.NotifyMode)
	}
	return nil
}

// SeedMenu loads the default catalog into the store. Idempotent.
func (c *CompositionRoot) SeedMenu(ctx context.Context) error {
	return c.menuRepo.Seed(ctx, menurepo.DefaultItems())
}

func (c *CompositionRoot) Simulator() *jobs.ProgressionSimulator {
	return c.simulator
}

// CreateServer builds the HTTP server with every handler wired in. In push
// mode the websocket hub is registered under /ws; otherwise no such route
// exists.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.createPlaceOrderCommandHandler(),
		c.createUpdateOrderStatusCommandHandler(),
		c.createDeleteOrderCommandHandler(),
		queries.NewGetOrderQueryHandler(c.orderRepo),
		queries.NewListOrdersQueryHandler(c.orderRepo),
		queries.NewGetMenuQueryHandler(c.menuRepo),
		queries.NewGetMenuCategoriesQueryHandler(c.menuRepo),
		queries.NewGetMenuItemQueryHandler(c.menuRepo),
		c.config.AdminEmail,
		c.wsHandler,
	)
}

func (c *CompositionRoot) createPlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.orderRepo, c.menuRepo, c.transport, c.simulator, c.logger)
}

func (c *CompositionRoot) createUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepo, c.transport, c.logger)
}

func (c *CompositionRoot) createDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderRepo)
}

// Close releases long-lived resources: the simulator scheduler, the
// websocket hub, and the broker connection if one was opened.
func (c *CompositionRoot) Close() {
	c.simulator.Shutdown()
	if hub, ok := c.transport.(*ws.Hub); ok {
		hub.Close()
	}
	if c.amqpConn != nil {
		if err := c.amqpConn.Close(); err != nil {
			c.logger.Warn("failed to close amqp connection", slog.Any("error", err))
		}
	}
}
