package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/exocatalog/internal/ingestion/pipeline"
	"github.com/yungbote/exocatalog/internal/observability"
	"github.com/yungbote/exocatalog/internal/platform/logger"
	"github.com/yungbote/exocatalog/internal/services"
)

type Services struct {
	Catalog services.CatalogService
	Filter  services.FilterService
	Report  services.ReportService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	catalog := services.NewCatalogService(db, log, r.Host, r.Discovery, r.Reference, r.PlanetarySystem, r.Planet)
	return Services{
		Catalog: catalog,
		Filter:  services.NewFilterService(log, r.Host, r.PlanetarySystem, r.Planet),
		Report:  services.NewReportService(log, catalog),
	}
}

func wirePipeline(log *logger.Logger, r Repos, metrics *observability.Metrics, observer pipeline.Observer) pipeline.Service {
	opts := []pipeline.Option{pipeline.WithMetrics(metrics)}
	if observer != nil {
		opts = append(opts, pipeline.WithObserver(observer))
	}
	return pipeline.NewService(log, r.Host, r.Reference, r.Discovery, r.PlanetarySystem, r.Planet, opts...)
}
