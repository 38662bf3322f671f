// Package app assembles TrueClause from configuration: metrics, inference,
// the audit service, optional report export and rate limiting, and the
// HTTP router.  cmd/apiserver and `trueclause serve` share it.
package app

import (
	"context"
	"net/http"

	"github.com/Gopesh111/TrueClause/internal/application/audit"
	"github.com/Gopesh111/TrueClause/internal/application/reporting"
	"github.com/Gopesh111/TrueClause/internal/config"
	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/domain/rulebook"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/database/redis"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/prometheus"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/storage/minio"
	"github.com/Gopesh111/TrueClause/internal/intelligence/failover"
	"github.com/Gopesh111/TrueClause/internal/intelligence/prompt"
	"github.com/Gopesh111/TrueClause/internal/intelligence/providers"
	httpserver "github.com/Gopesh111/TrueClause/internal/interfaces/http"
	"github.com/Gopesh111/TrueClause/internal/interfaces/http/handlers"
)

// App holds every long-lived component.  Optional parts are nil when
// disabled in configuration.
type App struct {
	Config    *config.Config
	Logger    logging.Logger
	Catalog   *rulebook.Catalog
	Metrics   *prometheus.AuditMetrics
	Collector prometheus.MetricsCollector
	Inference *failover.Client
	Service   *audit.Service

	MinIO   *minio.MinIOClient
	Redis   *redis.Client
	Limiter *redis.RateLimiter

	version string
}

// New builds the application.  External stores are connected only when
// their section is enabled; a connection failure there is fatal.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger, version string) (*App, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	a := &App{Config: cfg, Logger: logger, version: version}

	catalog, err := rulebook.NewCatalog()
	if err != nil {
		return nil, err
	}
	a.Catalog = catalog

	builder, err := prompt.NewBuilder()
	if err != nil {
		return nil, err
	}

	a.Collector = prometheus.NewNoopCollector()
	a.Metrics = prometheus.NewNoopAuditMetrics()
	if cfg.Metrics.Enabled {
		collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableGoMetrics:      true,
			EnableProcessMetrics: true,
		}, logger)
		if err != nil {
			return nil, err
		}
		a.Collector = collector
		a.Metrics = prometheus.NewAuditMetrics(collector)
	}

	a.Inference = providers.NewClient(cfg.Inference, logger, a.Metrics)

	opts := []audit.Option{audit.WithLogger(logger), audit.WithRecorder(a.Metrics)}
	if cfg.Storage.MinIO.Enabled {
		mc, err := minio.NewMinIOClient(ctx, cfg.Storage.MinIO, logger)
		if err != nil {
			return nil, err
		}
		a.MinIO = mc
		opts = append(opts, audit.WithExporter(reporting.NewExporter(minio.NewReportStore(mc, logger), logger)))
	}

	a.Service = audit.NewService(catalog, builder, a.Inference, audit.Config{
		MinWords:            cfg.Audit.MinWords,
		DefaultLanguage:     contract.Language(cfg.Audit.DefaultLanguage),
		DefaultDocumentType: contract.DocumentType(cfg.Audit.DefaultDocumentType),
	}, opts...)

	if cfg.RateLimit.Enabled {
		rc, err := redis.NewClient(cfg.RateLimit, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Redis = rc
		a.Limiter = redis.NewRateLimiter(rc, cfg.RateLimit, logger)
	}
	return a, nil
}

// Warm constructs both providers and logs any that cannot be built.
func (a *App) Warm() {
	for name, err := range a.Inference.Warm() {
		a.Logger.Warn("inference provider not available", logging.String(logging.FieldProvider, name), logging.Err(err))
	}
}

// Router builds the HTTP route tree.
func (a *App) Router() http.Handler {
	rc := httpserver.RouterConfig{
		AuditHandler:  handlers.NewAuditHandler(a.Service),
		RulesHandler:  handlers.NewRulesHandler(a.Catalog),
		HealthHandler: handlers.NewHealthHandler(a.version, a.checkers()...),
		MaxBodySize:   a.Config.Server.MaxBodySize,
		Mode:          a.Config.Server.Mode,
		Logger:        a.Logger,
	}
	if a.Config.Metrics.Enabled {
		rc.Recorder = a.Metrics
		rc.MetricsHandler = a.Collector.Handler()
		rc.MetricsPath = a.Config.Metrics.Path
	}
	if a.Limiter != nil {
		rc.RateLimiter = a.Limiter
	}
	return httpserver.NewRouter(rc)
}

// Server wraps Router in the configured http.Server.
func (a *App) Server() *httpserver.Server {
	return httpserver.NewServer(a.Config.Server, a.Router(), a.Logger)
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := a.Server()
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	a.Logger.Info("trueclause listening",
		logging.String("addr", srv.Addr()),
		logging.String("version", a.version),
		logging.String("primary", a.Config.Inference.Primary.Name),
		logging.String("secondary", a.Config.Inference.Secondary.Name),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := srv.Stop(context.Background()); err != nil {
		return err
	}
	return <-errCh
}

// WatchLogLevel applies log level changes from the config file at path
// without a restart.
func (a *App) WatchLogLevel(path string) error {
	setter, ok := a.Logger.(logging.LevelSetter)
	if !ok || path == "" {
		return nil
	}
	return config.Watch(path, func(cfg *config.Config) {
		if err := setter.SetLevel(cfg.Log.Level); err != nil {
			a.Logger.Warn("ignoring log level from reloaded config", logging.Err(err))
			return
		}
		a.Logger.Info("log level reloaded", logging.String("level", cfg.Log.Level))
	}, func(err error) {
		a.Logger.Warn("config reload failed", logging.Err(err))
	})
}

func (a *App) checkers() []handlers.HealthChecker {
	var out []handlers.HealthChecker
	if a.Redis != nil {
		out = append(out, handlers.CheckerFunc{ComponentName: "redis", Fn: a.Redis.Ping})
	}
	if a.MinIO != nil {
		out = append(out, handlers.CheckerFunc{ComponentName: "minio", Fn: func(ctx context.Context) error {
			_, err := a.MinIO.HealthCheck(ctx)
			return err
		}})
	}
	return out
}

// Close releases external connections.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.MinIO != nil {
		_ = a.MinIO.Close()
	}
}

//Personal.AI order the ending
