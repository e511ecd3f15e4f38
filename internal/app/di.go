package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/you-humble/autoparts/internal/config"
	"github.com/you-humble/autoparts/internal/converter"
	"github.com/you-humble/autoparts/internal/repository/cache"
	invrepository "github.com/you-humble/autoparts/internal/repository/invoice"
	partrepository "github.com/you-humble/autoparts/internal/repository/part"
	pmtconsumer "github.com/you-humble/autoparts/internal/service/consumer/payment"
	invservice "github.com/you-humble/autoparts/internal/service/invoice"
	partservice "github.com/you-humble/autoparts/internal/service/part"
	"github.com/you-humble/autoparts/internal/service/seed"
	invproducer "github.com/you-humble/autoparts/internal/service/producer/invoice"
	"github.com/you-humble/autoparts/internal/transport/http/health"
	invhttp "github.com/you-humble/autoparts/internal/transport/http/invoice/v1"
	parthttp "github.com/you-humble/autoparts/internal/transport/http/part/v1"
	"github.com/you-humble/autoparts/platform/closer"
	"github.com/you-humble/autoparts/platform/db/migrator"
	"github.com/you-humble/autoparts/platform/db/txmanager"
	"github.com/you-humble/autoparts/platform/kafka"
	"github.com/you-humble/autoparts/platform/kafka/consumer"
	"github.com/you-humble/autoparts/platform/kafka/middleware"
	"github.com/you-humble/autoparts/platform/kafka/producer"
	"github.com/you-humble/autoparts/platform/logger"
)

const (
	consumerTracerName = "autoparts/kafka"
	httpTracerName     = "autoparts/http"
)

type Converter interface {
	invproducer.Converter
	pmtconsumer.Converter
}

type PaymentConsumer interface {
	RunPaymentReceivedConsume(ctx context.Context) error
}

type PartService interface {
	parthttp.PartService
}

type InvoiceService interface {
	invhttp.InvoiceService
	pmtconsumer.Service
}

type di struct {
	dbPool    *pgxpool.Pool
	txManager *txmanager.Manager
	migrator  *migrator.Migrator
	redis     *redis.Client

	partRepository    cache.PartRepository
	invoiceRepository invservice.InvoiceRepository

	consumerGroup    sarama.ConsumerGroup
	paymentsConsumer kafka.Consumer
	paymentConsumer  PaymentConsumer

	syncProducer          sarama.SyncProducer
	invoiceEventsProducer kafka.Producer
	invoiceProducer       invservice.EventSender

	conv Converter

	partService    PartService
	invoiceService InvoiceService

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) TxManager(ctx context.Context) *txmanager.Manager {
	if d.txManager == nil {
		d.txManager = txmanager.New(d.DBPool(ctx))
	}

	return d.txManager
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

// Redis returns nil when no redis address is configured.
func (d *di) Redis(ctx context.Context) *redis.Client {
	cfg := config.C().Redis
	if d.redis == nil && cfg.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})

		closer.AddNamed("Redis client",
			func(ctx context.Context) error {
				return rdb.Close()
			})

		if err := rdb.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis %s: %v\n", cfg.Address(), err))
		}

		d.redis = rdb
	}

	return d.redis
}

func (d *di) PartRepository(ctx context.Context) cache.PartRepository {
	if d.partRepository == nil {
		var repo cache.PartRepository = partrepository.NewPartRepository(d.DBPool(ctx))

		if rdb := d.Redis(ctx); rdb != nil {
			cfg := config.C().Redis
			repo = cache.NewCachedPartRepository(repo, rdb, cfg.KeyPrefix(), cfg.TTL())
		}

		d.partRepository = repo
	}

	return d.partRepository
}

func (d *di) InvoiceRepository(ctx context.Context) invservice.InvoiceRepository {
	if d.invoiceRepository == nil {
		d.invoiceRepository = invrepository.NewInvoiceRepository(d.DBPool(ctx))
	}

	return d.invoiceRepository
}

func (d *di) KafkaConverter(ctx context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(ctx context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.PaymentsConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) PaymentsConsumer(ctx context.Context) kafka.Consumer {
	if d.paymentsConsumer == nil {
		d.paymentsConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.PaymentsTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Tracing(consumerTracerName),
			middleware.Logging(logger.L()),
		)
	}

	return d.paymentsConsumer
}

func (d *di) PaymentConsumer(ctx context.Context) PaymentConsumer {
	if d.paymentConsumer == nil {
		d.paymentConsumer = pmtconsumer.NewPaymentConsumer(
			d.PaymentsConsumer(ctx),
			d.KafkaConverter(ctx),
			d.InvoiceService(ctx),
		)
	}

	return d.paymentConsumer
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.InvoiceEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) InvoiceEventsProducer(ctx context.Context) kafka.Producer {
	if d.invoiceEventsProducer == nil {
		d.invoiceEventsProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.InvoiceEventsTopic(),
			logger.L(),
		)
	}

	return d.invoiceEventsProducer
}

func (d *di) InvoiceProducer(ctx context.Context) invservice.EventSender {
	if d.invoiceProducer == nil {
		if !config.C().Kafka.Enabled() {
			d.invoiceProducer = invproducer.NewNoop()
			return d.invoiceProducer
		}

		d.invoiceProducer = invproducer.NewInvoiceProducer(
			d.InvoiceEventsProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.invoiceProducer
}

func (d *di) PartService(ctx context.Context) PartService {
	if d.partService == nil {
		d.partService = partservice.NewPartService(
			d.PartRepository(ctx),
			d.TxManager(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.partService
}

func (d *di) InvoiceService(ctx context.Context) InvoiceService {
	if d.invoiceService == nil {
		billing := config.C().Billing

		d.invoiceService = invservice.NewInvoiceService(
			d.InvoiceRepository(ctx),
			d.PartRepository(ctx),
			d.TxManager(ctx),
			d.InvoiceProducer(ctx),
			invservice.Config{
				TaxRate:    billing.TaxRate(),
				Prefix:     billing.InvoicePrefix(),
				DateLayout: billing.NumberDateLayout(),
				SeqWidth:   billing.NumberSeqWidth(),
				Location:   billing.Location(),
			},
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.invoiceService
}

func (d *di) HealthChecks(ctx context.Context) map[string]health.Check {
	checks := map[string]health.Check{
		"postgres": d.DBPool(ctx).Ping,
	}
	if rdb := d.Redis(ctx); rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	return checks
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

// SeedCatalog loads the sample parts through the part service so every
// seeded part gets its INITIAL movement.
func (d *di) SeedCatalog(ctx context.Context) (int, error) {
	return seed.PartsBootstrap(ctx, d.PartRepository(ctx), d.PartService(ctx))
}
