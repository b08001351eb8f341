package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yungbote/exocatalog/internal/data/query"
	"github.com/yungbote/exocatalog/internal/data/repos"
	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/normalization"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	apperrors "github.com/yungbote/exocatalog/internal/pkg/errors"
	"github.com/yungbote/exocatalog/internal/pkg/pointers"
	"github.com/yungbote/exocatalog/internal/platform/apierr"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

// DefaultNearEarthDistance is the distance bound (parsecs) used when none is given.
const DefaultNearEarthDistance = "100"

// DefaultMinPlanets is the planet count a host must exceed when min_planets is absent.
const DefaultMinPlanets = 1

const (
	planetJoinHost      = "JOIN host ON host.id = planet.host_id"
	planetJoinDiscovery = "JOIN discovery ON discovery.id = planet.discovery_id"
	hostJoinPlanet      = "JOIN planet ON planet.host_id = host.id"
	systemJoinHost      = "JOIN host ON host.id = planetary_system.host_id"
)

// NearEarthParams are the raw query values of the near-earth range filter.
// Nil or blank values impose no constraint.
type NearEarthParams struct {
	Distance  *string `form:"distance"`
	MinMass   *string `form:"min_mass"`
	MaxMass   *string `form:"max_mass"`
	MinRadius *string `form:"min_radius"`
	MaxRadius *string `form:"max_radius"`
	MinTemp   *string `form:"min_temp"`
	MaxTemp   *string `form:"max_temp"`
}

type HomeStats struct {
	TotalHosts   int64 `json:"total_hosts"`
	TotalPlanets int64 `json:"total_planets"`
}

// VisualizationPoint is one host placed on the sky map.
type VisualizationPoint struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
	RA       float64 `json:"ra"`
	Dec      float64 `json:"dec"`
}

type FilterService interface {
	PlanetsNearEarth(dbc dbctx.Context, params NearEarthParams) ([]*types.Planet, error)
	PlanetsByDiscoveryMethod(dbc dbctx.Context, method *string) ([]*types.Planet, error)
	PlanetsByDiscoveryYear(dbc dbctx.Context, year *string) ([]*types.Planet, error)
	PlanetsByControversialFlag(dbc dbctx.Context, flag *string) ([]*types.Planet, error)
	PlanetsByMinMass(dbc dbctx.Context, minMass *string) ([]*types.Planet, error)
	HostsByMinPlanets(dbc dbctx.Context, minPlanets *string) ([]*types.Host, error)
	SystemsByMaxDistance(dbc dbctx.Context, maxDistance *string) ([]*types.PlanetarySystem, error)
	HomeStats(dbc dbctx.Context) (*HomeStats, error)
	SystemsVisualization(dbc dbctx.Context) ([]VisualizationPoint, error)
}

type filterService struct {
	log     *logger.Logger
	hosts   repos.HostRepo
	systems repos.PlanetarySystemRepo
	planets repos.PlanetRepo
}

func NewFilterService(
	log *logger.Logger,
	hostRepo repos.HostRepo,
	systemRepo repos.PlanetarySystemRepo,
	planetRepo repos.PlanetRepo,
) FilterService {
	return &filterService{
		log:     log.With("service", "FilterService"),
		hosts:   hostRepo,
		systems: systemRepo,
		planets: planetRepo,
	}
}

// present treats a blank query value as absent.
func present(raw *string) *string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	return raw
}

func filterErr(op string, err error) error {
	if errors.Is(err, apperrors.ErrInvalidFilter) {
		return apierr.New(http.StatusBadRequest, "invalid_filter", err)
	}
	return storeErr(op, err)
}

func (s *filterService) findPlanets(dbc dbctx.Context, op string, b *query.Builder) ([]*types.Planet, error) {
	scope, err := b.Build()
	if err != nil {
		return nil, filterErr(op, err)
	}
	rows, err := s.planets.Find(dbc, scope)
	if err != nil {
		return nil, filterErr(op, err)
	}
	return rows, nil
}

func (s *filterService) PlanetsNearEarth(dbc dbctx.Context, params NearEarthParams) ([]*types.Planet, error) {
	distance := present(params.Distance)
	if distance == nil {
		d := DefaultNearEarthDistance
		distance = &d
	}
	b := query.New().
		Select("planet.*").
		Join(planetJoinHost).
		Numeric("host.distance", query.Lte, distance).
		Numeric("planet.mass", query.Gte, present(params.MinMass)).
		Numeric("planet.mass", query.Lte, present(params.MaxMass)).
		Numeric("planet.radius", query.Gte, present(params.MinRadius)).
		Numeric("planet.radius", query.Lte, present(params.MaxRadius)).
		Numeric("planet.equilibrium_temperature", query.Gte, present(params.MinTemp)).
		Numeric("planet.equilibrium_temperature", query.Lte, present(params.MaxTemp))
	return s.findPlanets(dbc, "planets near earth", b)
}

func (s *filterService) PlanetsByDiscoveryMethod(dbc dbctx.Context, method *string) ([]*types.Planet, error) {
	b := query.New().
		Select("planet.*").
		Join(planetJoinDiscovery).
		Where("discovery.method", query.Eq, present(method))
	return s.findPlanets(dbc, "planets by discovery method", b)
}

func (s *filterService) PlanetsByDiscoveryYear(dbc dbctx.Context, year *string) ([]*types.Planet, error) {
	b := query.New().
		Select("planet.*").
		Join(planetJoinDiscovery).
		Integer("discovery.year", query.Eq, present(year))
	return s.findPlanets(dbc, "planets by discovery year", b)
}

func (s *filterService) PlanetsByControversialFlag(dbc dbctx.Context, flag *string) ([]*types.Planet, error) {
	b := query.New()
	if raw := present(flag); raw != nil {
		v, ok := normalization.ParseBool(*raw)
		if !ok {
			return nil, filterErr("planets by controversial flag",
				fmt.Errorf("%w: controversial_flag must be a boolean, got %q", apperrors.ErrInvalidFilter, *raw))
		}
		b.Where("planet.controversial_flag", query.Eq, v)
	}
	return s.findPlanets(dbc, "planets by controversial flag", b)
}

func (s *filterService) PlanetsByMinMass(dbc dbctx.Context, minMass *string) ([]*types.Planet, error) {
	b := query.New().Numeric("planet.mass", query.Gt, present(minMass))
	return s.findPlanets(dbc, "planets by min mass", b)
}

// HostsByMinPlanets returns hosts with more than minPlanets planets, or more
// than DefaultMinPlanets when the parameter is absent.
func (s *filterService) HostsByMinPlanets(dbc dbctx.Context, minPlanets *string) ([]*types.Host, error) {
	const op = "hosts by min planets"
	threshold := float64(DefaultMinPlanets)
	if raw := present(minPlanets); raw != nil {
		n := normalization.ParseFloat(*raw, nil)
		if n == nil {
			return nil, filterErr(op, fmt.Errorf("%w: min_planets must be numeric, got %q", apperrors.ErrInvalidFilter, *raw))
		}
		threshold = *n
	}
	b := query.New().
		Select("host.*").
		Join(hostJoinPlanet).
		GroupHaving("host.id", "COUNT(planet.id)", query.Gt, threshold)
	scope, err := b.Build()
	if err != nil {
		return nil, filterErr(op, err)
	}
	rows, err := s.hosts.Find(dbc, scope)
	if err != nil {
		return nil, filterErr(op, err)
	}
	return rows, nil
}

func (s *filterService) SystemsByMaxDistance(dbc dbctx.Context, maxDistance *string) ([]*types.PlanetarySystem, error) {
	const op = "systems by max distance"
	b := query.New().
		Select("planetary_system.*").
		Join(systemJoinHost).
		Numeric("host.distance", query.Lt, present(maxDistance))
	scope, err := b.Build()
	if err != nil {
		return nil, filterErr(op, err)
	}
	rows, err := s.systems.Find(dbc, scope)
	if err != nil {
		return nil, filterErr(op, err)
	}
	return rows, nil
}

func (s *filterService) HomeStats(dbc dbctx.Context) (*HomeStats, error) {
	hosts, err := s.hosts.Count(dbc)
	if err != nil {
		return nil, storeErr("count hosts", err)
	}
	planets, err := s.planets.Count(dbc)
	if err != nil {
		return nil, storeErr("count planets", err)
	}
	return &HomeStats{TotalHosts: hosts, TotalPlanets: planets}, nil
}

// SystemsVisualization places every host with a known distance on the sky.
// Hosts without a system sit at ra=dec=0; hosts whose system has no reference
// are left out.
func (s *filterService) SystemsVisualization(dbc dbctx.Context) ([]VisualizationPoint, error) {
	hosts, err := s.hosts.List(dbc)
	if err != nil {
		return nil, storeErr("list hosts", err)
	}
	systems, err := s.systems.List(dbc)
	if err != nil {
		return nil, storeErr("list systems", err)
	}
	byHost := make(map[uint]*types.PlanetarySystem, len(systems))
	for _, sys := range systems {
		byHost[sys.HostID] = sys
	}

	out := make([]VisualizationPoint, 0, len(hosts))
	for _, h := range hosts {
		var ra, dec *float64
		if sys, ok := byHost[h.ID]; ok {
			if sys.ParameterReference == nil {
				continue
			}
			ra, dec = sys.ParameterReference.RADegrees, sys.ParameterReference.DecDegrees
		}
		if h.Distance == nil {
			continue
		}
		out = append(out, VisualizationPoint{
			ID:       h.ID,
			Name:     h.Name,
			Distance: *h.Distance,
			RA:       pointers.DerefOr(ra, 0),
			Dec:      pointers.DerefOr(dec, 0),
		})
	}
	s.log.Debug("Visualization feed built", "hosts", len(hosts), "points", len(out))
	return out, nil
}
