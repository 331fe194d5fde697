package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet/cmd"
	"fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/rabbitmq"
	"fleet/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig(".env", os.Args[1:])
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err = run(configs, logger); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

// run returns only after every deferred cleanup has run, so main can exit with a status.
func run(configs cmd.Config, logger *slog.Logger) error {
	gormDB := mustOpenDB(configs)

	publisher, closePublisher := mustPublisher(configs, logger)
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	router, err := app.CreateRouter()
	if err != nil {
		return fmt.Errorf("create router: %w", err)
	}

	return runWebServer(ctx, router, net.JoinHostPort("0.0.0.0", configs.HTTPPort), logger)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	return gormDB
}

func mustPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL is empty, domain events will be dropped")
		return rabbitmq.NoopPublisher{}, func() {}
	}

	publisher, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange)
	if err != nil {
		log.Fatalf("connect to rabbitmq: %v", err)
	}

	return publisher, func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Error("close rabbitmq publisher", "error", closeErr)
		}
	}
}

// runWebServer serves until ctx is done or the server fails to start or stops on its own.
func runWebServer(ctx context.Context, e *echo.Echo, addr string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	if err := <-errCh; err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
