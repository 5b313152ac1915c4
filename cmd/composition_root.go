package cmd

import (
	"context"
	"fmt"
	"log/slog"

	apihttp "speedfast/internal/adapters/in/http"
	"speedfast/internal/adapters/out/memory/ledger"
	"speedfast/internal/adapters/out/memory/stagingbuffer"
	"speedfast/internal/core/application/usecases/commands"
	"speedfast/internal/core/application/usecases/queries"
	"speedfast/internal/core/domain/model/courier"
	"speedfast/internal/core/domain/model/kernel"
	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/jobs"
	"speedfast/internal/pkg/pause"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	buffer   *stagingbuffer.Buffer
	ledger   *ledger.Ledger
	sequence *kernel.Sequence
	couriers []*courier.Courier
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return CompositionRoot{}, err
	}

	buffer, err := stagingbuffer.New(config.BufferCapacity)
	if err != nil {
		return CompositionRoot{}, err
	}

	couriers, err := NewCouriers(config.CourierNames, config.WorkerCount)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:   config,
		logger:   logger,
		buffer:   buffer,
		ledger:   ledger.New(),
		sequence: kernel.NewSequence(config.OrderIDStart),
		couriers: couriers,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.buffer, c.sequence)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(
		c.buffer,
		c.ledger,
		pause.Between(c.config.DeliveryMinDelay, c.config.DeliveryMaxDelay),
	)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.buffer)
}

func (c *CompositionRoot) CreateGetDeliveryReportQueryHandler() queries.GetDeliveryReportQueryHandler {
	return queries.NewGetDeliveryReportQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.couriers, c.ledger)
}

func (c *CompositionRoot) CreateHTTPServer() *apihttp.Server {
	return apihttp.NewServer(
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetDeliveryReportQueryHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateGetAllCouriersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	generator := jobs.NewOrderGeneratorJob(
		c.CreateCreateOrderCommandHandler(),
		jobs.OrderGeneratorConfig{
			Count:     c.config.OrderCount,
			Unbounded: c.config.OrderUnbounded,
			Kinds:     c.config.OrderKinds,
			MinDelay:  c.config.GeneratorMinDelay,
			MaxDelay:  c.config.GeneratorMaxDelay,
		},
		c.logger,
	)

	dispatchHandler := c.CreateDispatchOrderCommandHandler()
	workers := make([]*jobs.DispatchWorker, 0, len(c.couriers))
	for _, cr := range c.couriers {
		workers = append(workers, jobs.NewDispatchWorker(dispatchHandler, cr, c.logger))
	}

	monitor := jobs.NewStateMonitorJob(
		c.CreateGetPendingOrdersQueryHandler(),
		c.config.MonitorInterval,
		c.logger,
	)

	return jobs.NewJobManager(generator, workers, monitor, c.buffer, c.config.ShutdownTimeout, c.logger)
}

// SeedDemoOrders stages DemoOrders before the pipeline starts. Config
// validation guarantees they fit, so Insert never blocks here.
func (c *CompositionRoot) SeedDemoOrders(ctx context.Context) error {
	handler := c.CreateCreateOrderCommandHandler()
	for _, cmd := range DemoOrders() {
		id, err := handler.Handle(ctx, cmd)
		if err != nil {
			return fmt.Errorf("failed to seed demo order: %w", err)
		}
		c.logger.InfoContext(ctx, "Demo order staged",
			"order_id", id, "kind", cmd.Kind().String(), "priority", cmd.Priority().String())
	}
	return nil
}

// NewCouriers builds count couriers, cycling through names. A name used
// more than once gets a " #n" suffix so every courier stays distinguishable
// in the ledger.
func NewCouriers(names []string, count int) ([]*courier.Courier, error) {
	if len(names) == 0 {
		return nil, courier.ErrNameIsRequired
	}

	couriers := make([]*courier.Courier, 0, count)
	for i := range count {
		name := names[i%len(names)]
		if round := i / len(names); round > 0 {
			name = fmt.Sprintf("%s #%d", name, round+1)
		}

		c, err := courier.NewCourier(kernel.NewUUID(), name)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// DemoOrders is the fixed six-order workload: three HIGH food orders, two
// MEDIUM express orders and one LOW parcel, interleaved.
func DemoOrders() []commands.CreateOrderCommand {
	demo := []struct {
		kind     order.Kind
		address  string
		distance float64
		weight   float64
	}{
		{order.Food, "Av. Las Rosas 1470", 2, 0},
		{order.Express, "Av. Manuel Rodriguez 780", 5, 0},
		{order.Food, "Los Carrera 1890", 4, 0},
		{order.Parcel, "Av Paicavi 1250", 6, 3},
		{order.Express, "Av Ohiggins 940", 3, 0},
		{order.Food, "San Martin 520", 1, 0},
	}

	cmds := make([]commands.CreateOrderCommand, 0, len(demo))
	for _, d := range demo {
		cmd, err := commands.NewCreateOrderCommand(d.kind, d.kind.DefaultPriority(), d.address, d.distance, d.weight)
		if err != nil {
			panic(fmt.Sprintf("invalid demo order: %v", err))
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
