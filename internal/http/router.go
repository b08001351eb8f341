package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/exocatalog/internal/http/handlers"
	httpMW "github.com/yungbote/exocatalog/internal/http/middleware"
	"github.com/yungbote/exocatalog/internal/observability"
	"github.com/yungbote/exocatalog/internal/platform/logger"
	"github.com/yungbote/exocatalog/internal/services"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	CORSOrigins    []string
	TracingEnabled bool
	ServiceName    string

	HostHandler      *httpH.HostHandler
	DiscoveryHandler *httpH.DiscoveryHandler
	ReferenceHandler *httpH.ReferenceHandler
	SystemHandler    *httpH.SystemHandler
	PlanetHandler    *httpH.PlanetHandler
	FilterHandler    *httpH.FilterHandler
	ReportHandler    *httpH.ReportHandler

	HealthHandler *httpH.HealthHandler
}

type crudHandler interface {
	List(*gin.Context)
	Create(*gin.Context)
	Get(*gin.Context)
	Put(*gin.Context)
	Patch(*gin.Context)
	Delete(*gin.Context)
}

func registerCRUD(g *gin.RouterGroup, path string, h crudHandler) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Put)
	g.PATCH(path+"/:id", h.Patch)
	g.DELETE(path+"/:id", h.Delete)
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.Correlate())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Pages
	if cfg.FilterHandler != nil {
		r.GET("/home", cfg.FilterHandler.Home)
		r.GET("/planets/near-earth", cfg.FilterHandler.NearEarth)
		r.GET("/systems/visualization", cfg.FilterHandler.Visualization)
	}

	api := r.Group("/api")
	{
		if cfg.FilterHandler != nil {
			api.GET("/planets/discovery-method", cfg.FilterHandler.DiscoveryMethod)
			api.GET("/planets/discovery-year", cfg.FilterHandler.DiscoveryYear)
			api.GET("/planets/min-mass", cfg.FilterHandler.MinMass)
			api.GET("/planets/controversial-flag", cfg.FilterHandler.ControversialFlag)
			api.GET("/hosts/min-planets", cfg.FilterHandler.MinPlanets)
			api.GET("/systems/max-distance", cfg.FilterHandler.MaxDistance)
		}
		if cfg.HostHandler != nil {
			registerCRUD(api, "/hosts", cfg.HostHandler)
		}
		if cfg.DiscoveryHandler != nil {
			registerCRUD(api, "/discoveries", cfg.DiscoveryHandler)
		}
		if cfg.ReferenceHandler != nil {
			registerCRUD(api, "/system-parameters", cfg.ReferenceHandler)
		}
		if cfg.SystemHandler != nil {
			registerCRUD(api, "/systems", cfg.SystemHandler)
		}
		if cfg.PlanetHandler != nil {
			registerCRUD(api, "/planets", cfg.PlanetHandler)
		}
	}

	// Reports
	if cfg.ReportHandler != nil {
		report := r.Group("/report")
		report.GET("", cfg.ReportHandler.Index)
		for _, kind := range []string{
			services.ReportHost,
			services.ReportDiscovery,
			services.ReportPlanetarySystem,
			services.ReportPlanet,
		} {
			report.GET("/"+kind, cfg.ReportHandler.Form(kind))
			report.POST("/"+kind, cfg.ReportHandler.Submit(kind))
		}
	}

	return r
}
