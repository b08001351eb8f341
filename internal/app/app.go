package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/exocatalog/internal/data/db"
	httpserver "github.com/yungbote/exocatalog/internal/http"
	"github.com/yungbote/exocatalog/internal/ingestion/csvsource"
	"github.com/yungbote/exocatalog/internal/ingestion/pipeline"
	"github.com/yungbote/exocatalog/internal/observability"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Cfg      *Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Router   *gin.Engine

	otelShutdown func(context.Context) error
}

// New opens the store and wires repos, services and the router. It does not migrate.
func New(ctx context.Context, cfg *Config, version string) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if strings.EqualFold(cfg.LogMode, "prod") || strings.EqualFold(cfg.LogMode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := db.NewService(cfg.DBConfig(), log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}

	metrics := observability.Init(log, cfg.Metrics.Enabled)
	if err := metrics.RegisterDBStats(store.DB(), store.Driver()); err != nil {
		log.Warn("db stats collector not registered", "error", err)
	}
	otelShutdown := observability.InitOTel(ctx, log, cfg.OtelConfig(version))

	reposet := wireRepos(store.DB(), log)
	serviceset := wireServices(store.DB(), log, reposet)
	handlerset := wireHandlers(log, store.DB(), serviceset)
	router := wireRouter(log, cfg, metrics, handlerset)

	return &App{
		Log:          log,
		DB:           store,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		Router:       router,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Migrate() error {
	a.Log.Info("Migrating schema...", "driver", a.DB.Driver())
	return db.AutoMigrateAll(a.DB.DB())
}

// Ingest loads one CSV export, calling observer after every row.
func (a *App) Ingest(ctx context.Context, path string, observer pipeline.Observer) ([]pipeline.RowOutcome, error) {
	src, err := csvsource.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	a.Log.Info("Ingesting CSV", "path", path)
	return wirePipeline(a.Log, a.Repos, a.Metrics, observer).Ingest(ctx, src)
}

// Serve runs the HTTP server until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	addr := ":" + a.Cfg.Port
	srv := &httpserver.Server{Engine: a.Router}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", addr)
		return srv.Run(gctx, addr, shutdownTimeout)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down...")
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
