package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"speedfast/cmd"
	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := cmd.LoadConfig(envLookup(nil))

	require.NoError(t, err)
	assert.Equal(t, cmd.DefaultConfig(), c)
	assert.Equal(t, 10, c.BufferCapacity)
	assert.Equal(t, 3, c.WorkerCount)
	assert.Equal(t, []string{"Rogelio Hernandez", "Cecilia Matamala", "Rafael Bravo"}, c.CourierNames)
	assert.Equal(t, 6, c.OrderCount)
	assert.Equal(t, int64(2000), c.OrderIDStart)
	assert.Equal(t, 3*time.Second, c.MonitorInterval)
	assert.Equal(t, time.Minute, c.ShutdownTimeout)
	assert.True(t, c.SeedDemoOrders)
	assert.Empty(t, c.HTTPPort)
}

func TestLoadConfig_Overrides(t *testing.T) {
	c, err := cmd.LoadConfig(envLookup(map[string]string{
		"HTTP_PORT":           "8082",
		"LOG_LEVEL":           "debug",
		"BUFFER_CAPACITY":     "20",
		"WORKER_COUNT":        "5",
		"COURIER_NAMES":       " Ana , ,Luis ",
		"GENERATOR_MIN_DELAY": "10ms",
		"GENERATOR_MAX_DELAY": "20ms",
		"DELIVERY_MIN_DELAY":  "0s",
		"DELIVERY_MAX_DELAY":  "1s",
		"ORDER_COUNT":         "0",
		"ORDER_UNBOUNDED":     "true",
		"ORDER_KINDS":         "Parcel, express",
		"ORDER_ID_START":      "0",
		"SEED_DEMO_ORDERS":    "false",
		"MONITOR_INTERVAL":    "1s",
		"SHUTDOWN_TIMEOUT":    "5s",
	}))

	require.NoError(t, err)
	assert.Equal(t, "8082", c.HTTPPort)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, 20, c.BufferCapacity)
	assert.Equal(t, 5, c.WorkerCount)
	assert.Equal(t, []string{"Ana", "Luis"}, c.CourierNames)
	assert.Equal(t, 10*time.Millisecond, c.GeneratorMinDelay)
	assert.Equal(t, 20*time.Millisecond, c.GeneratorMaxDelay)
	assert.Zero(t, c.DeliveryMinDelay)
	assert.True(t, c.OrderUnbounded)
	assert.Equal(t, []order.Kind{order.Parcel, order.Express}, c.OrderKinds)
	assert.Zero(t, c.OrderIDStart)
	assert.False(t, c.SeedDemoOrders)
}

func TestLoadConfig_BlankValuesFallBack(t *testing.T) {
	c, err := cmd.LoadConfig(envLookup(map[string]string{"BUFFER_CAPACITY": "  "}))

	require.NoError(t, err)
	assert.Equal(t, 10, c.BufferCapacity)
}

func TestLoadConfig_ReportsEveryProblem(t *testing.T) {
	_, err := cmd.LoadConfig(envLookup(map[string]string{
		"BUFFER_CAPACITY":    "ten",
		"WORKER_COUNT":       "0",
		"ORDER_KINDS":        "food,pizza",
		"DELIVERY_MIN_DELAY": "3s",
		"DELIVERY_MAX_DELAY": "1s",
		"MONITOR_INTERVAL":   "soon",
		"LOG_LEVEL":          "loud",
	}))

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "BUFFER_CAPACITY")
	assert.Contains(t, msg, "WORKER_COUNT")
	assert.Contains(t, msg, `"pizza" is not a known order kind`)
	assert.Contains(t, msg, "DELIVERY_MAX_DELAY")
	assert.Contains(t, msg, "MONITOR_INTERVAL")
	assert.Contains(t, msg, "LOG_LEVEL")
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cmd.Config)
		want   string
	}{
		{"capacity too large", func(c *cmd.Config) { c.BufferCapacity = 1_000_000 }, "BUFFER_CAPACITY"},
		{"no couriers", func(c *cmd.Config) { c.CourierNames = nil }, "COURIER_NAMES"},
		{"negative generator delay", func(c *cmd.Config) { c.GeneratorMinDelay = -time.Second }, "GENERATOR_MIN_DELAY"},
		{"negative count", func(c *cmd.Config) { c.OrderCount = -1 }, "ORDER_COUNT"},
		{"no kinds", func(c *cmd.Config) { c.OrderKinds = nil }, "ORDER_KINDS"},
		{"negative id start", func(c *cmd.Config) { c.OrderIDStart = -5 }, "ORDER_ID_START"},
		{"demo orders do not fit", func(c *cmd.Config) { c.BufferCapacity = 2 }, "SEED_DEMO_ORDERS"},
		{"monitor too fast", func(c *cmd.Config) { c.MonitorInterval = 100 * time.Millisecond }, "MONITOR_INTERVAL"},
		{"no shutdown timeout", func(c *cmd.Config) { c.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cmd.DefaultConfig()
			tt.mutate(&c)

			err := c.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("small buffer without demo orders", func(t *testing.T) {
		c := cmd.DefaultConfig()
		c.BufferCapacity = 2
		c.SeedDemoOrders = false
		require.NoError(t, c.Validate())
	})
}
