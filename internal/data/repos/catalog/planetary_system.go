package catalog

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type PlanetarySystemRepo interface {
	Create(dbc dbctx.Context, rows []*types.PlanetarySystem) ([]*types.PlanetarySystem, error)
	GetByID(dbc dbctx.Context, id uint) (*types.PlanetarySystem, error)
	GetByHostID(dbc dbctx.Context, hostID uint) (*types.PlanetarySystem, error)
	List(dbc dbctx.Context) ([]*types.PlanetarySystem, error)
	Find(dbc dbctx.Context, scopes ...Scope) ([]*types.PlanetarySystem, error)
	Update(dbc dbctx.Context, row *types.PlanetarySystem) error
	DeleteByID(dbc dbctx.Context, id uint) (int64, error)
	FindOrCreateThenRefresh(dbc dbctx.Context, hostID uint, referenceID *uint) (*types.PlanetarySystem, bool, error)
}

type planetarySystemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanetarySystemRepo(db *gorm.DB, baseLog *logger.Logger) PlanetarySystemRepo {
	return &planetarySystemRepo{db: db, log: baseLog.With("repo", "PlanetarySystemRepo")}
}

func (r *planetarySystemRepo) preloaded(dbc dbctx.Context) *gorm.DB {
	return dbc.Conn(r.db).Preload("Host").Preload("ParameterReference")
}

func (r *planetarySystemRepo) Create(dbc dbctx.Context, rows []*types.PlanetarySystem) ([]*types.PlanetarySystem, error) {
	if len(rows) == 0 {
		return []*types.PlanetarySystem{}, nil
	}
	if err := dbc.Conn(r.db).Omit("Host", "ParameterReference").Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *planetarySystemRepo) GetByID(dbc dbctx.Context, id uint) (*types.PlanetarySystem, error) {
	return takeByID[types.PlanetarySystem](r.preloaded(dbc), id)
}

func (r *planetarySystemRepo) GetByHostID(dbc dbctx.Context, hostID uint) (*types.PlanetarySystem, error) {
	if hostID == 0 {
		return nil, nil
	}
	var out types.PlanetarySystem
	err := r.preloaded(dbc).Where("host_id = ?", hostID).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *planetarySystemRepo) List(dbc dbctx.Context) ([]*types.PlanetarySystem, error) {
	return r.Find(dbc)
}

func (r *planetarySystemRepo) Find(dbc dbctx.Context, scopes ...Scope) ([]*types.PlanetarySystem, error) {
	var out []*types.PlanetarySystem
	q := applyScopes(r.preloaded(dbc).Model(&types.PlanetarySystem{}), scopes)
	if err := q.Order("planetary_system.id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planetarySystemRepo) Update(dbc dbctx.Context, row *types.PlanetarySystem) error {
	if row == nil || row.ID == 0 {
		return nil
	}
	return dbc.Conn(r.db).Omit("Host", "ParameterReference").Save(row).Error
}

func (r *planetarySystemRepo) DeleteByID(dbc dbctx.Context, id uint) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&types.PlanetarySystem{})
	return res.RowsAffected, res.Error
}

// FindOrCreateThenRefresh matches by host and always overwrites the reference.
func (r *planetarySystemRepo) FindOrCreateThenRefresh(dbc dbctx.Context, hostID uint, referenceID *uint) (*types.PlanetarySystem, bool, error) {
	conn := dbc.Conn(r.db)
	q := conn.Model(&types.PlanetarySystem{}).Where("host_id = ?", hostID)
	fresh := &types.PlanetarySystem{HostID: hostID, ParameterReferenceID: referenceID}
	row, created, err := firstOrInsert(q, conn.Omit("Host", "ParameterReference"), fresh)
	if err != nil {
		return nil, false, err
	}
	if created {
		return row, true, nil
	}
	if err := conn.Model(&types.PlanetarySystem{}).
		Where("id = ?", row.ID).
		Update("parameter_reference_id", referenceID).Error; err != nil {
		return nil, false, err
	}
	row.ParameterReferenceID = referenceID
	return row, false, nil
}
