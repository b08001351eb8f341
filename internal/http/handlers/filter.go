package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/http/response"
	"github.com/yungbote/exocatalog/internal/services"
)

type FilterHandler struct {
	filters services.FilterService
}

func NewFilterHandler(filters services.FilterService) *FilterHandler {
	return &FilterHandler{filters: filters}
}

// GET /home
func (h *FilterHandler) Home(c *gin.Context) {
	stats, err := h.filters.HomeStats(dbcFrom(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, stats)
}

// GET /planets/near-earth
func (h *FilterHandler) NearEarth(c *gin.Context) {
	var params services.NearEarthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filter", err)
		return
	}
	rows, err := h.filters.PlanetsNearEarth(dbcFrom(c), params)
	h.planets(c, rows, err)
}

// GET /systems/visualization
func (h *FilterHandler) Visualization(c *gin.Context) {
	points, err := h.filters.SystemsVisualization(dbcFrom(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, points)
}

// GET /api/planets/discovery-method?discovery_method=
func (h *FilterHandler) DiscoveryMethod(c *gin.Context) {
	rows, err := h.filters.PlanetsByDiscoveryMethod(dbcFrom(c), queryParam(c, "discovery_method"))
	h.planets(c, rows, err)
}

// GET /api/planets/discovery-year?discovery_year=
func (h *FilterHandler) DiscoveryYear(c *gin.Context) {
	rows, err := h.filters.PlanetsByDiscoveryYear(dbcFrom(c), queryParam(c, "discovery_year"))
	h.planets(c, rows, err)
}

// GET /api/planets/controversial-flag?controversial_flag=
func (h *FilterHandler) ControversialFlag(c *gin.Context) {
	rows, err := h.filters.PlanetsByControversialFlag(dbcFrom(c), queryParam(c, "controversial_flag"))
	h.planets(c, rows, err)
}

// GET /api/planets/min-mass?min_mass=
func (h *FilterHandler) MinMass(c *gin.Context) {
	rows, err := h.filters.PlanetsByMinMass(dbcFrom(c), queryParam(c, "min_mass"))
	h.planets(c, rows, err)
}

// GET /api/hosts/min-planets?min_planets=
func (h *FilterHandler) MinPlanets(c *gin.Context) {
	rows, err := h.filters.HostsByMinPlanets(dbcFrom(c), queryParam(c, "min_planets"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/systems/max-distance?max_distance=
func (h *FilterHandler) MaxDistance(c *gin.Context) {
	rows, err := h.filters.SystemsByMaxDistance(dbcFrom(c), queryParam(c, "max_distance"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out := make([]*systemView, 0, len(rows))
	for _, s := range rows {
		out = append(out, newSystemView(s))
	}
	response.RespondOK(c, out)
}

func (h *FilterHandler) planets(c *gin.Context, rows []*types.Planet, err error) {
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}
