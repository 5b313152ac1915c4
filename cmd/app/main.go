package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"syscall"
	"time"

	"speedfast/cmd"
	"speedfast/internal/core/application/usecases/queries"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()

	configs, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := cmd.NotifyShutdown(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.SeedDemoOrders {
		if err = app.SeedDemoOrders(ctx); err != nil {
			log.Fatalf("Failed to seed demo orders: %v", err)
		}
	}

	var e *echo.Echo
	if configs.HTTPPort != "" {
		e = startWebServer(&app, configs.HTTPPort, logger)
	}

	runErr := app.CreateJobManager().Run(ctx)

	if e != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err = e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to stop web server", "error", err)
		}
		cancel()
	}

	printReport(&app, logger)

	switch {
	case runErr == nil:
	case errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded):
		logger.Warn("Run interrupted", "error", runErr)
	default:
		logger.Error("Run failed", "error", runErr)
		stop()
		os.Exit(1)
	}
}

// loadDotEnv reads .env when present; real environment variables win.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	if err := app.CreateHTTPServer().RegisterHandlers(e); err != nil {
		log.Fatalf("Failed to register HTTP handlers: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Web server stopped", "error", err)
		}
	}()

	return e
}

func printReport(app *cmd.CompositionRoot, logger *slog.Logger) {
	ctx := context.Background()
	handler := app.CreateGetDeliveryReportQueryHandler()

	report, err := handler.Handle(ctx, queries.NewGetDeliveryReportQuery())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build delivery report", "error", err)
		return
	}

	for _, d := range report.Deliveries {
		logger.InfoContext(ctx, "Delivered", "order_id", d.OrderID, "summary", d.Summary)
	}
	logger.InfoContext(ctx, "Delivery report", "total", report.Total)
}
