package redis

import (
	"context"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/you-humble/autoparts/platform/logger"
	tc "github.com/you-humble/autoparts/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Option func(*config)

type config struct {
	imageName string
	logger    Logger
}

func WithImageName(image string) Option {
	return func(c *config) {
		c.imageName = image
	}
}

func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

type Container struct {
	container *tcredis.RedisContainer
	client    *goredis.Client
	addr      string
	log       Logger
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &config{imageName: tc.RedisImage, logger: &logger.NoopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := tcredis.Run(ctx, cfg.imageName)
	if err != nil {
		return nil, errors.Errorf("failed to start redis container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to build redis uri: %v", err)
	}

	redisOpts, err := goredis.ParseURL(uri)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to parse redis uri: %v", err)
	}

	client := goredis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		_ = container.Terminate(ctx)
		return nil, errors.Errorf("failed to ping redis: %v", err)
	}

	cfg.logger.Info(ctx, "Redis container started", logger.String("addr", redisOpts.Addr))

	return &Container{
		container: container,
		client:    client,
		addr:      redisOpts.Addr,
		log:       cfg.logger,
	}, nil
}

func (c *Container) Client() *goredis.Client { return c.client }

// Address is host:port as expected by REDIS_ADDR.
func (c *Container) Address() string { return c.addr }

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Close(); err != nil {
		c.log.Error(ctx, "failed to close redis client", logger.ErrorF(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		c.log.Error(ctx, "failed to terminate redis container", logger.ErrorF(err))
	}

	return nil
}
