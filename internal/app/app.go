package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/autoparts/internal/config"
	"github.com/you-humble/autoparts/internal/transport/http/health"
	invhttp "github.com/you-humble/autoparts/internal/transport/http/invoice/v1"
	httpmw "github.com/you-humble/autoparts/internal/transport/http/middleware"
	parthttp "github.com/you-humble/autoparts/internal/transport/http/part/v1"
	"github.com/you-humble/autoparts/platform/closer"
	"github.com/you-humble/autoparts/platform/logger"
	"github.com/you-humble/autoparts/platform/tracing"
)

type app struct {
	di     *di
	server *http.Server
}

// New prepares the HTTP server: migrations are applied and, when enabled,
// the sample catalog is loaded.
func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx,
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initTracing,
		a.initDI,
		a.initTables,
		a.initSeed,
		a.initServer,
	); err != nil {
		return nil, err
	}

	return a, nil
}

// NewTool prepares only config, logging and dependencies for one-shot commands.
func NewTool(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx,
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) MigrateUp(ctx context.Context) error   { return a.di.Migrator(ctx).Up() }
func (a *app) MigrateDown(ctx context.Context) error { return a.di.Migrator(ctx).Down() }

func (a *app) MigrationVersion(ctx context.Context) (int64, error) {
	return a.di.Migrator(ctx).Version()
}

func (a *app) Seed(ctx context.Context) (int, error) { return a.di.SeedCatalog(ctx) }

func (a *app) Close(_ context.Context) { gracefulShutdown() }

func (a *app) init(ctx context.Context, inits ...func(context.Context) error) error {
	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initTracing(ctx context.Context) error {
	cfg := config.C().Tracing

	shutdown, err := tracing.Init(ctx, tracing.Config{
		ServiceName:    cfg.ServiceName(),
		ServiceVersion: cfg.ServiceVersion(),
		Endpoint:       cfg.Endpoint(),
		URLPath:        cfg.URLPath(),
		Insecure:       cfg.Insecure(),
		SampleRatio:    cfg.SampleRatio(),
	})
	if err != nil {
		logger.Error(ctx, "failed to init tracing", logger.ErrorF(err))
		return err
	}
	closer.AddNamed("Tracer provider", shutdown)

	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initSeed(ctx context.Context) error {
	if !config.C().Billing.SeedOnStart() {
		return nil
	}

	if _, err := a.di.SeedCatalog(ctx); err != nil {
		logger.Error(ctx, "failed to seed parts", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		httpmw.Tracing(httpTracerName),
		httpmw.AccessLog,
		middleware.Recoverer,
	)

	parthttp.NewPartHandler(a.di.PartService(ctx)).Register(r)
	invhttp.NewInvoiceHandler(
		a.di.InvoiceService(ctx),
		cfg.Billing.Location(),
	).Register(r)

	r.Get("/health", health.NewHealthHandler(a.di.HealthChecks(ctx)).HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	if config.C().Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 payment consumer running",
				logger.String("kafka_broker", config.C().Kafka.Brokers()[0]),
			)
			return a.di.PaymentConsumer(egCtx).RunPaymentReceivedConsume(egCtx)
		})
	}

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 autoparts server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(context.Background(), "🛑 Server shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.C().Server.ShutdownTimeout())
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
