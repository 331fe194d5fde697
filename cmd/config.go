package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RabbitMQURL empty disables event publishing.
	RabbitMQURL      string
	RabbitMQExchange string

	// AssignmentRetrySchedule empty disables the sweep of unassigned orders.
	AssignmentRetrySchedule string
	AssignmentBatchSize     int
	AssignmentMaxAttempts   int
	AssignmentBaseDelay     time.Duration
	AssignmentMaxDelay      time.Duration

	CancelPolicy string
}

// LoadConfig reads configuration in order: envFile (if present), environment, then args.
// Later sources override earlier ones.
func LoadConfig(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	env := envReader{}
	cfg := Config{
		HTTPPort:                env.text("HTTP_PORT", "8080"),
		DBHost:                  env.text("DB_HOST", "localhost"),
		DBPort:                  env.text("DB_PORT", "5432"),
		DBUser:                  env.text("DB_USER", "fleet"),
		DBPassword:              env.text("DB_PASSWORD", ""),
		DBName:                  env.text("DB_NAME", "fleet"),
		DBSslMode:               env.text("DB_SSLMODE", "disable"),
		RabbitMQURL:             env.text("RABBITMQ_URL", ""),
		RabbitMQExchange:        env.text("RABBITMQ_EXCHANGE", "fleet.orders"),
		AssignmentRetrySchedule: env.text("ASSIGNMENT_RETRY_SCHEDULE", "@every 30s"),
		AssignmentBatchSize:     env.integer("ASSIGNMENT_BATCH_SIZE", commands.DefaultPendingBatchSize),
		AssignmentMaxAttempts:   env.integer("ASSIGNMENT_MAX_ATTEMPTS", commands.DefaultRetryPolicy().MaxAttempts),
		AssignmentBaseDelay:     env.duration("ASSIGNMENT_BASE_DELAY", commands.DefaultRetryPolicy().BaseDelay),
		AssignmentMaxDelay:      env.duration("ASSIGNMENT_MAX_DELAY", commands.DefaultRetryPolicy().MaxDelay),
		CancelPolicy:            env.text("CANCEL_POLICY", services.CancelKeepsReservation.String()),
	}
	if err := errors.Join(env.errs...); err != nil {
		return Config{}, err
	}

	fs := pflag.NewFlagSet("fleet", pflag.ContinueOnError)
	fs.StringVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "port the HTTP API listens on")
	fs.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "PostgreSQL host")
	fs.StringVar(&cfg.DBPort, "db-port", cfg.DBPort, "PostgreSQL port")
	fs.StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "PostgreSQL user")
	fs.StringVar(&cfg.DBPassword, "db-password", cfg.DBPassword, "PostgreSQL password")
	fs.StringVar(&cfg.DBName, "db-name", cfg.DBName, "PostgreSQL database")
	fs.StringVar(&cfg.DBSslMode, "db-sslmode", cfg.DBSslMode, "PostgreSQL sslmode")
	fs.StringVar(&cfg.RabbitMQURL, "rabbitmq-url", cfg.RabbitMQURL, "AMQP URL for order events, empty to disable")
	fs.StringVar(&cfg.RabbitMQExchange, "rabbitmq-exchange", cfg.RabbitMQExchange, "topic exchange for order events")
	fs.StringVar(&cfg.AssignmentRetrySchedule, "assignment-retry-schedule", cfg.AssignmentRetrySchedule,
		"cron schedule of the unassigned orders sweep, empty to disable")
	fs.IntVar(&cfg.AssignmentBatchSize, "assignment-batch-size", cfg.AssignmentBatchSize,
		"orders tried per sweep")
	fs.IntVar(&cfg.AssignmentMaxAttempts, "assignment-max-attempts", cfg.AssignmentMaxAttempts,
		"attempts per command when a concurrent writer wins")
	fs.DurationVar(&cfg.AssignmentBaseDelay, "assignment-base-delay", cfg.AssignmentBaseDelay,
		"backoff before the second attempt")
	fs.DurationVar(&cfg.AssignmentMaxDelay, "assignment-max-delay", cfg.AssignmentMaxDelay, "backoff cap")
	fs.StringVar(&cfg.CancelPolicy, "cancel-policy", cfg.CancelPolicy,
		"keep or release the driver's reservation when an assigned order is cancelled")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP port: %q", c.HTTPPort))
	}
	if c.DBHost == "" {
		errs = append(errs, errors.New("DB host is required"))
	}
	if c.DBUser == "" {
		errs = append(errs, errors.New("DB user is required"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("DB name is required"))
	}
	if c.RabbitMQURL != "" && c.RabbitMQExchange == "" {
		errs = append(errs, errors.New("RabbitMQ exchange is required when a URL is set"))
	}
	if c.AssignmentBatchSize < 1 || c.AssignmentBatchSize > commands.MaxPendingBatchSize {
		errs = append(errs, fmt.Errorf("assignment batch size must be within 1..%d, got %d",
			commands.MaxPendingBatchSize, c.AssignmentBatchSize))
	}
	if c.AssignmentMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("assignment max attempts must be positive, got %d", c.AssignmentMaxAttempts))
	}
	if c.AssignmentBaseDelay < 0 || c.AssignmentMaxDelay < c.AssignmentBaseDelay {
		errs = append(errs, fmt.Errorf("assignment delays must satisfy 0 <= base (%s) <= max (%s)",
			c.AssignmentBaseDelay, c.AssignmentMaxDelay))
	}
	if _, err := services.ParseCancelPolicy(c.CancelPolicy); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) RetryPolicy() commands.RetryPolicy {
	return commands.RetryPolicy{
		MaxAttempts: c.AssignmentMaxAttempts,
		BaseDelay:   c.AssignmentBaseDelay,
		MaxDelay:    c.AssignmentMaxDelay,
	}
}

// envReader collects parse failures so every bad variable is reported at once.
type envReader struct {
	errs []error
}

func (r *envReader) text(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (r *envReader) integer(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
