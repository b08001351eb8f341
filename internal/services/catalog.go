package services

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/yungbote/exocatalog/internal/data/repos"
	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/apierr"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

const invalidChoice = "Select a valid choice. That choice is not one of the available choices."

// CatalogService is the create/read/update/delete surface over the five catalog entities.
// Get* return an *apierr.Error with status 404 when the row does not exist.
type CatalogService interface {
	ListHosts(dbc dbctx.Context) ([]*types.Host, error)
	GetHost(dbc dbctx.Context, id uint) (*types.Host, error)
	CreateHost(dbc dbctx.Context, in HostInput) (*types.Host, error)
	UpdateHost(dbc dbctx.Context, id uint, in HostInput) (*types.Host, error)
	DeleteHost(dbc dbctx.Context, id uint) error

	ListDiscoveries(dbc dbctx.Context) ([]*types.Discovery, error)
	GetDiscovery(dbc dbctx.Context, id uint) (*types.Discovery, error)
	CreateDiscovery(dbc dbctx.Context, in DiscoveryInput) (*types.Discovery, error)
	UpdateDiscovery(dbc dbctx.Context, id uint, in DiscoveryInput) (*types.Discovery, error)
	DeleteDiscovery(dbc dbctx.Context, id uint) error

	ListReferences(dbc dbctx.Context) ([]*types.SystemParameterReference, error)
	GetReference(dbc dbctx.Context, id uint) (*types.SystemParameterReference, error)
	CreateReference(dbc dbctx.Context, in SystemParameterReferenceInput) (*types.SystemParameterReference, error)
	UpdateReference(dbc dbctx.Context, id uint, in SystemParameterReferenceInput) (*types.SystemParameterReference, error)
	DeleteReference(dbc dbctx.Context, id uint) error

	ListSystems(dbc dbctx.Context) ([]*types.PlanetarySystem, error)
	GetSystem(dbc dbctx.Context, id uint) (*types.PlanetarySystem, error)
	CreateSystem(dbc dbctx.Context, in PlanetarySystemInput) (*types.PlanetarySystem, error)
	UpdateSystem(dbc dbctx.Context, id uint, in PlanetarySystemInput) (*types.PlanetarySystem, error)
	DeleteSystem(dbc dbctx.Context, id uint) error

	ListPlanets(dbc dbctx.Context) ([]*types.Planet, error)
	GetPlanet(dbc dbctx.Context, id uint) (*types.Planet, error)
	CreatePlanet(dbc dbctx.Context, in PlanetInput) (*types.Planet, error)
	UpdatePlanet(dbc dbctx.Context, id uint, in PlanetInput) (*types.Planet, error)
	DeletePlanet(dbc dbctx.Context, id uint) error
}

type catalogService struct {
	db         *gorm.DB
	log        *logger.Logger
	hosts      repos.HostRepo
	discovery  repos.DiscoveryRepo
	references repos.SystemParameterReferenceRepo
	systems    repos.PlanetarySystemRepo
	planets    repos.PlanetRepo
}

func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	hostRepo repos.HostRepo,
	discoveryRepo repos.DiscoveryRepo,
	referenceRepo repos.SystemParameterReferenceRepo,
	systemRepo repos.PlanetarySystemRepo,
	planetRepo repos.PlanetRepo,
) CatalogService {
	RegisterValidatorTags()
	return &catalogService{
		db:         db,
		log:        log.With("service", "CatalogService"),
		hosts:      hostRepo,
		discovery:  discoveryRepo,
		references: referenceRepo,
		systems:    systemRepo,
		planets:    planetRepo,
	}
}

func (s *catalogService) validate(in any) error {
	if err := Validate(in); err != nil {
		return apierr.Validation(FieldErrors(err))
	}
	return nil
}

func storeErr(op string, err error) error {
	return apierr.New(http.StatusInternalServerError, "store_error", fmt.Errorf("%s: %w", op, err))
}

func missing(what string, id uint) error {
	return apierr.NotFound(fmt.Sprintf("%s %d", what, id))
}

// ---- hosts ----

func (s *catalogService) ListHosts(dbc dbctx.Context) ([]*types.Host, error) {
	rows, err := s.hosts.List(dbc)
	if err != nil {
		return nil, storeErr("list hosts", err)
	}
	return rows, nil
}

func (s *catalogService) GetHost(dbc dbctx.Context, id uint) (*types.Host, error) {
	row, err := s.hosts.GetByID(dbc, id)
	if err != nil {
		return nil, storeErr("get host", err)
	}
	if row == nil {
		return nil, missing("host", id)
	}
	return row, nil
}

func (s *catalogService) CreateHost(dbc dbctx.Context, in HostInput) (*types.Host, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row := &types.Host{}
	in.apply(row)
	if _, err := s.hosts.Create(dbc, []*types.Host{row}); err != nil {
		return nil, storeErr("create host", err)
	}
	s.log.Info("Host created", "host_id", row.ID)
	return row, nil
}

func (s *catalogService) UpdateHost(dbc dbctx.Context, id uint, in HostInput) (*types.Host, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row, err := s.GetHost(dbc, id)
	if err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.hosts.Update(dbc, row); err != nil {
		return nil, storeErr("update host", err)
	}
	return row, nil
}

func (s *catalogService) DeleteHost(dbc dbctx.Context, id uint) error {
	n, err := s.hosts.DeleteByID(dbc, id)
	if err != nil {
		return storeErr("delete host", err)
	}
	if n == 0 {
		return missing("host", id)
	}
	s.log.Info("Host deleted", "host_id", id)
	return nil
}

// ---- discoveries ----

func (s *catalogService) ListDiscoveries(dbc dbctx.Context) ([]*types.Discovery, error) {
	rows, err := s.discovery.List(dbc)
	if err != nil {
		return nil, storeErr("list discoveries", err)
	}
	return rows, nil
}

func (s *catalogService) GetDiscovery(dbc dbctx.Context, id uint) (*types.Discovery, error) {
	row, err := s.discovery.GetByID(dbc, id)
	if err != nil {
		return nil, storeErr("get discovery", err)
	}
	if row == nil {
		return nil, missing("discovery", id)
	}
	return row, nil
}

func (s *catalogService) CreateDiscovery(dbc dbctx.Context, in DiscoveryInput) (*types.Discovery, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row := &types.Discovery{}
	in.apply(row)
	if _, err := s.discovery.Create(dbc, []*types.Discovery{row}); err != nil {
		return nil, storeErr("create discovery", err)
	}
	return row, nil
}

func (s *catalogService) UpdateDiscovery(dbc dbctx.Context, id uint, in DiscoveryInput) (*types.Discovery, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row, err := s.GetDiscovery(dbc, id)
	if err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.discovery.Update(dbc, row); err != nil {
		return nil, storeErr("update discovery", err)
	}
	return row, nil
}

func (s *catalogService) DeleteDiscovery(dbc dbctx.Context, id uint) error {
	n, err := s.discovery.DeleteByID(dbc, id)
	if err != nil {
		return storeErr("delete discovery", err)
	}
	if n == 0 {
		return missing("discovery", id)
	}
	return nil
}

// ---- system parameter references ----

func (s *catalogService) ListReferences(dbc dbctx.Context) ([]*types.SystemParameterReference, error) {
	rows, err := s.references.List(dbc)
	if err != nil {
		return nil, storeErr("list references", err)
	}
	return rows, nil
}

func (s *catalogService) GetReference(dbc dbctx.Context, id uint) (*types.SystemParameterReference, error) {
	row, err := s.references.GetByID(dbc, id)
	if err != nil {
		return nil, storeErr("get reference", err)
	}
	if row == nil {
		return nil, missing("system parameter reference", id)
	}
	return row, nil
}

func (s *catalogService) CreateReference(dbc dbctx.Context, in SystemParameterReferenceInput) (*types.SystemParameterReference, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row := &types.SystemParameterReference{}
	in.apply(row)
	if _, err := s.references.Create(dbc, []*types.SystemParameterReference{row}); err != nil {
		return nil, storeErr("create reference", err)
	}
	return row, nil
}

func (s *catalogService) UpdateReference(dbc dbctx.Context, id uint, in SystemParameterReferenceInput) (*types.SystemParameterReference, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row, err := s.GetReference(dbc, id)
	if err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.references.Update(dbc, row); err != nil {
		return nil, storeErr("update reference", err)
	}
	return row, nil
}

func (s *catalogService) DeleteReference(dbc dbctx.Context, id uint) error {
	n, err := s.references.DeleteByID(dbc, id)
	if err != nil {
		return storeErr("delete reference", err)
	}
	if n == 0 {
		return missing("system parameter reference", id)
	}
	return nil
}

// ---- planetary systems ----

func (s *catalogService) ListSystems(dbc dbctx.Context) ([]*types.PlanetarySystem, error) {
	rows, err := s.systems.List(dbc)
	if err != nil {
		return nil, storeErr("list systems", err)
	}
	return rows, nil
}

func (s *catalogService) GetSystem(dbc dbctx.Context, id uint) (*types.PlanetarySystem, error) {
	row, err := s.systems.GetByID(dbc, id)
	if err != nil {
		return nil, storeErr("get system", err)
	}
	if row == nil {
		return nil, missing("planetary system", id)
	}
	return row, nil
}

// checkSystem verifies the referenced rows exist and the host has no other system.
func (s *catalogService) checkSystem(dbc dbctx.Context, in PlanetarySystemInput, selfID uint) error {
	var fields []apierr.FieldError
	host, err := s.hosts.GetByID(dbc, in.HostID)
	if err != nil {
		return storeErr("check host", err)
	}
	if host == nil {
		fields = append(fields, apierr.FieldError{Field: "host_id", Message: invalidChoice})
	} else {
		existing, err := s.systems.GetByHostID(dbc, in.HostID)
		if err != nil {
			return storeErr("check system", err)
		}
		if existing != nil && existing.ID != selfID {
			fields = append(fields, apierr.FieldError{Field: "host_id", Message: "Planetary system with this Host already exists."})
		}
	}
	if in.ParameterReferenceID != nil {
		ref, err := s.references.GetByID(dbc, *in.ParameterReferenceID)
		if err != nil {
			return storeErr("check reference", err)
		}
		if ref == nil {
			fields = append(fields, apierr.FieldError{Field: "parameter_reference_id", Message: invalidChoice})
		}
	}
	if len(fields) > 0 {
		return apierr.Validation(fields)
	}
	return nil
}

func (s *catalogService) CreateSystem(dbc dbctx.Context, in PlanetarySystemInput) (*types.PlanetarySystem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if err := s.checkSystem(dbc, in, 0); err != nil {
		return nil, err
	}
	row := &types.PlanetarySystem{}
	in.apply(row)
	if _, err := s.systems.Create(dbc, []*types.PlanetarySystem{row}); err != nil {
		return nil, storeErr("create system", err)
	}
	return s.GetSystem(dbc, row.ID)
}

func (s *catalogService) UpdateSystem(dbc dbctx.Context, id uint, in PlanetarySystemInput) (*types.PlanetarySystem, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row, err := s.GetSystem(dbc, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkSystem(dbc, in, id); err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.systems.Update(dbc, row); err != nil {
		return nil, storeErr("update system", err)
	}
	return s.GetSystem(dbc, id)
}

func (s *catalogService) DeleteSystem(dbc dbctx.Context, id uint) error {
	n, err := s.systems.DeleteByID(dbc, id)
	if err != nil {
		return storeErr("delete system", err)
	}
	if n == 0 {
		return missing("planetary system", id)
	}
	return nil
}

// ---- planets ----

func (s *catalogService) ListPlanets(dbc dbctx.Context) ([]*types.Planet, error) {
	rows, err := s.planets.List(dbc)
	if err != nil {
		return nil, storeErr("list planets", err)
	}
	return rows, nil
}

func (s *catalogService) GetPlanet(dbc dbctx.Context, id uint) (*types.Planet, error) {
	row, err := s.planets.GetByID(dbc, id)
	if err != nil {
		return nil, storeErr("get planet", err)
	}
	if row == nil {
		return nil, missing("planet", id)
	}
	return row, nil
}

func (s *catalogService) checkPlanet(dbc dbctx.Context, in PlanetInput) error {
	var fields []apierr.FieldError
	host, err := s.hosts.GetByID(dbc, in.HostID)
	if err != nil {
		return storeErr("check host", err)
	}
	if host == nil {
		fields = append(fields, apierr.FieldError{Field: "host_id", Message: invalidChoice})
	}
	disc, err := s.discovery.GetByID(dbc, in.DiscoveryID)
	if err != nil {
		return storeErr("check discovery", err)
	}
	if disc == nil {
		fields = append(fields, apierr.FieldError{Field: "discovery_id", Message: invalidChoice})
	}
	if len(fields) > 0 {
		return apierr.Validation(fields)
	}
	return nil
}

func (s *catalogService) CreatePlanet(dbc dbctx.Context, in PlanetInput) (*types.Planet, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if err := s.checkPlanet(dbc, in); err != nil {
		return nil, err
	}
	row := &types.Planet{}
	in.apply(row)
	if _, err := s.planets.Create(dbc, []*types.Planet{row}); err != nil {
		return nil, storeErr("create planet", err)
	}
	return s.GetPlanet(dbc, row.ID)
}

func (s *catalogService) UpdatePlanet(dbc dbctx.Context, id uint, in PlanetInput) (*types.Planet, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	row, err := s.GetPlanet(dbc, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPlanet(dbc, in); err != nil {
		return nil, err
	}
	in.apply(row)
	if err := s.planets.Update(dbc, row); err != nil {
		return nil, storeErr("update planet", err)
	}
	return s.GetPlanet(dbc, id)
}

func (s *catalogService) DeletePlanet(dbc dbctx.Context, id uint) error {
	n, err := s.planets.DeleteByID(dbc, id)
	if err != nil {
		return storeErr("delete planet", err)
	}
	if n == 0 {
		return missing("planet", id)
	}
	return nil
}
