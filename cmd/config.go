package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"speedfast/internal/adapters/out/memory/stagingbuffer"
	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/pkg/errs"
)

const (
	maxWorkerCount     = 256
	minMonitorInterval = time.Second
)

type Config struct {
	HTTPPort string
	LogLevel slog.Level

	BufferCapacity int
	WorkerCount    int
	CourierNames   []string

	GeneratorMinDelay time.Duration
	GeneratorMaxDelay time.Duration
	DeliveryMinDelay  time.Duration
	DeliveryMaxDelay  time.Duration

	OrderCount     int
	OrderUnbounded bool
	OrderKinds     []order.Kind
	OrderIDStart   int64
	SeedDemoOrders bool

	MonitorInterval time.Duration
	ShutdownTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		LogLevel:          slog.LevelInfo,
		BufferCapacity:    10,
		WorkerCount:       3,
		CourierNames:      []string{"Rogelio Hernandez", "Cecilia Matamala", "Rafael Bravo"},
		GeneratorMinDelay: time.Second,
		GeneratorMaxDelay: time.Second,
		DeliveryMinDelay:  2 * time.Second,
		DeliveryMaxDelay:  5 * time.Second,
		OrderCount:        6,
		OrderKinds:        order.AllKinds(),
		OrderIDStart:      2000,
		SeedDemoOrders:    true,
		MonitorInterval:   3 * time.Second,
		ShutdownTimeout:   time.Minute,
	}
}

// LoadConfig reads every setting through lookup (os.LookupEnv in
// production), falling back to DefaultConfig for unset or blank variables.
// Every parse and validation failure is reported at once.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	c := DefaultConfig()
	env := envReader{lookup: lookup}

	c.HTTPPort = env.getString("HTTP_PORT", c.HTTPPort)
	c.LogLevel = env.getLevel("LOG_LEVEL", c.LogLevel)
	c.BufferCapacity = env.getInt("BUFFER_CAPACITY", c.BufferCapacity)
	c.WorkerCount = env.getInt("WORKER_COUNT", c.WorkerCount)
	c.CourierNames = env.getList("COURIER_NAMES", c.CourierNames)
	c.GeneratorMinDelay = env.getDuration("GENERATOR_MIN_DELAY", c.GeneratorMinDelay)
	c.GeneratorMaxDelay = env.getDuration("GENERATOR_MAX_DELAY", c.GeneratorMaxDelay)
	c.DeliveryMinDelay = env.getDuration("DELIVERY_MIN_DELAY", c.DeliveryMinDelay)
	c.DeliveryMaxDelay = env.getDuration("DELIVERY_MAX_DELAY", c.DeliveryMaxDelay)
	c.OrderCount = env.getInt("ORDER_COUNT", c.OrderCount)
	c.OrderUnbounded = env.getBool("ORDER_UNBOUNDED", c.OrderUnbounded)
	c.OrderKinds = env.getKinds("ORDER_KINDS", c.OrderKinds)
	c.OrderIDStart = int64(env.getInt("ORDER_ID_START", int(c.OrderIDStart)))
	c.SeedDemoOrders = env.getBool("SEED_DEMO_ORDERS", c.SeedDemoOrders)
	c.MonitorInterval = env.getDuration("MONITOR_INTERVAL", c.MonitorInterval)
	c.ShutdownTimeout = env.getDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	if err := errors.Join(errors.Join(env.failures...), c.Validate()); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	var errList []error

	if c.BufferCapacity < 1 || c.BufferCapacity > stagingbuffer.MaxCapacity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("BUFFER_CAPACITY",
			c.BufferCapacity, 1, stagingbuffer.MaxCapacity))
	}
	if c.WorkerCount < 1 || c.WorkerCount > maxWorkerCount {
		errList = append(errList, errs.NewValueIsOutOfRangeError("WORKER_COUNT",
			c.WorkerCount, 1, maxWorkerCount))
	}
	if len(c.CourierNames) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("COURIER_NAMES"))
	}
	errList = append(errList,
		validateDelays("GENERATOR", c.GeneratorMinDelay, c.GeneratorMaxDelay),
		validateDelays("DELIVERY", c.DeliveryMinDelay, c.DeliveryMaxDelay),
	)
	if c.OrderCount < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ORDER_COUNT",
			fmt.Errorf("%d is negative", c.OrderCount)))
	}
	if len(c.OrderKinds) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("ORDER_KINDS"))
	}
	if c.OrderIDStart < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ORDER_ID_START",
			fmt.Errorf("%d is negative", c.OrderIDStart)))
	}
	if demo := len(DemoOrders()); c.SeedDemoOrders && c.BufferCapacity < demo {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SEED_DEMO_ORDERS",
			fmt.Errorf("the demo orders need BUFFER_CAPACITY of at least %d", demo)))
	}
	if c.MonitorInterval < minMonitorInterval {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("MONITOR_INTERVAL",
			fmt.Errorf("%s is shorter than %s", c.MonitorInterval, minMonitorInterval)))
	}
	if c.ShutdownTimeout <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SHUTDOWN_TIMEOUT",
			fmt.Errorf("%s is not positive", c.ShutdownTimeout)))
	}

	return errors.Join(errList...)
}

func validateDelays(prefix string, minDelay, maxDelay time.Duration) error {
	var errList []error
	if minDelay < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(prefix+"_MIN_DELAY",
			fmt.Errorf("%s is negative", minDelay)))
	}
	if maxDelay < minDelay {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(prefix+"_MAX_DELAY",
			fmt.Errorf("%s is less than %s_MIN_DELAY %s", maxDelay, prefix, minDelay)))
	}
	return errors.Join(errList...)
}

// envReader collects parse errors so LoadConfig can report all of them.
type envReader struct {
	lookup   func(string) (string, bool)
	failures []error
}

func (r *envReader) raw(key string) (string, bool) {
	v, ok := r.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) getString(key, fallback string) string {
	if v, ok := r.raw(key); ok {
		return v
	}
	return fallback
}

func (r *envReader) getInt(key string, fallback int) int {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.failures = append(r.failures, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return n
}

func (r *envReader) getBool(key string, fallback bool) bool {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.failures = append(r.failures, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return b
}

func (r *envReader) getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.failures = append(r.failures, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return d
}

func (r *envReader) getLevel(key string, fallback slog.Level) slog.Level {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		r.failures = append(r.failures, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return level
}

func (r *envReader) getList(key string, fallback []string) []string {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	var items []string
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (r *envReader) getKinds(key string, fallback []order.Kind) []order.Kind {
	if _, ok := r.raw(key); !ok {
		return fallback
	}
	var kinds []order.Kind
	for _, name := range r.getList(key, nil) {
		kind, err := order.ParseKind(name)
		if err != nil {
			r.failures = append(r.failures, fmt.Errorf("%s: %w", key, err))
			continue
		}
		kinds = append(kinds, kind)
	}
	return kinds
}
