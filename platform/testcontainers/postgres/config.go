package postgres

import (
	"context"

	"github.com/you-humble/autoparts/platform/logger"
	tc "github.com/you-humble/autoparts/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	ImageName     string
	Database      string
	Username      string
	Password      string
	MigrationsDir string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: tc.PostgresImage,
		Database:  "autoparts",
		Username:  "autoparts",
		Password:  "autoparts",
		Logger:    &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
