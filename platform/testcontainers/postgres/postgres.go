package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/you-humble/autoparts/platform/db/migrator"
	"github.com/you-humble/autoparts/platform/logger"
)

const (
	postgresPort           = "5432/tcp"
	postgresStartupTimeout = 1 * time.Minute
)

type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := tcpostgres.Run(ctx,
		cfg.ImageName,
		tcpostgres.WithDatabase(cfg.Database),
		tcpostgres.WithUsername(cfg.Username),
		tcpostgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort(postgresPort).WithStartupTimeout(postgresStartupTimeout),
		),
	)
	if err != nil {
		return nil, errors.Errorf("failed to start postgres container: %v", err)
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", logger.ErrorF(err))
			}
		}
	}()

	cfg.Host, err = container.Host(ctx)
	if err != nil {
		return nil, errors.Errorf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}
	cfg.Port = port.Port()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, errors.Errorf("failed to build connection string: %v", err)
	}

	pool, err := connectPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MigrationsDir != "" {
		m := migrator.NewMigrator(stdlib.OpenDBFromPool(pool), cfg.MigrationsDir)
		err = m.Up()
		_ = m.Close()
		if err != nil {
			pool.Close()
			return nil, errors.Errorf("failed to apply migrations: %v", err)
		}
	}

	cfg.Logger.Info(ctx, "Postgres container started", logger.String("host", cfg.Host), logger.String("port", cfg.Port))
	success = true

	return &Container{
		container: container,
		pool:      pool,
		dsn:       dsn,
		cfg:       cfg,
	}, nil
}

func (c *Container) Pool() *pgxpool.Pool { return c.pool }
func (c *Container) DSN() string         { return c.dsn }
func (c *Container) Config() *Config     { return c.cfg }

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", logger.ErrorF(err))
	}

	c.cfg.Logger.Info(ctx, "Postgres container terminated")

	return nil
}

func connectPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Errorf("failed to create pg pool: %v", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Errorf("failed to ping postgres: %v", err)
	}

	return pool, nil
}
