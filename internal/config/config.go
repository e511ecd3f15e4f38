package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/autoparts/internal/config/env"
)

var cfg *config

type config struct {
	Server   Server
	Logger   Logger
	Postgres Database
	Billing  Billing
	Kafka    Kafka
	Redis    Redis
	Tracing  Tracing
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	postgresCfg, err := envconfig.NewPostgresConfig()
	if err != nil {
		return fmt.Errorf("%s Postgres: %w", op, err)
	}

	billingCfg, err := envconfig.NewBillingConfig()
	if err != nil {
		return fmt.Errorf("%s Billing: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	redisCfg, err := envconfig.NewRedisConfig()
	if err != nil {
		return fmt.Errorf("%s Redis: %w", op, err)
	}

	tracingCfg, err := envconfig.NewTracingConfig()
	if err != nil {
		return fmt.Errorf("%s Tracing: %w", op, err)
	}

	cfg = &config{
		Server:   serverCfg,
		Logger:   loggerCfg,
		Postgres: postgresCfg,
		Billing:  billingCfg,
		Kafka:    kafkaCfg,
		Redis:    redisCfg,
		Tracing:  tracingCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
