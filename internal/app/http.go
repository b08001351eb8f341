package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/exocatalog/internal/http"
	httpH "github.com/yungbote/exocatalog/internal/http/handlers"
	"github.com/yungbote/exocatalog/internal/observability"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Host      *httpH.HostHandler
	Discovery *httpH.DiscoveryHandler
	Reference *httpH.ReferenceHandler
	System    *httpH.SystemHandler
	Planet    *httpH.PlanetHandler
	Filter    *httpH.FilterHandler
	Report    *httpH.ReportHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(db),
		Host:      httpH.NewHostHandler(services.Catalog),
		Discovery: httpH.NewDiscoveryHandler(services.Catalog),
		Reference: httpH.NewReferenceHandler(services.Catalog),
		System:    httpH.NewSystemHandler(services.Catalog),
		Planet:    httpH.NewPlanetHandler(services.Catalog),
		Filter:    httpH.NewFilterHandler(services.Filter),
		Report:    httpH.NewReportHandler(services.Report),
	}
}

func wireRouter(log *logger.Logger, cfg *Config, metrics *observability.Metrics, handlers Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		CORSOrigins:      cfg.CORSAllowedOrigins,
		TracingEnabled:   cfg.Otel.Enabled,
		ServiceName:      cfg.Otel.ServiceName,
		HealthHandler:    handlers.Health,
		HostHandler:      handlers.Host,
		DiscoveryHandler: handlers.Discovery,
		ReferenceHandler: handlers.Reference,
		SystemHandler:    handlers.System,
		PlanetHandler:    handlers.Planet,
		FilterHandler:    handlers.Filter,
		ReportHandler:    handlers.Report,
	})
}
