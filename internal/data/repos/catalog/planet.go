package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type PlanetRepo interface {
	Create(dbc dbctx.Context, rows []*types.Planet) ([]*types.Planet, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Planet, error)
	List(dbc dbctx.Context) ([]*types.Planet, error)
	Find(dbc dbctx.Context, scopes ...Scope) ([]*types.Planet, error)
	Count(dbc dbctx.Context) (int64, error)
	Update(dbc dbctx.Context, row *types.Planet) error
	DeleteByID(dbc dbctx.Context, id uint) (int64, error)
	FindOrCreate(dbc dbctx.Context, key types.PlanetKey, defaults types.PlanetDefaults) (*types.Planet, bool, error)
}

type planetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanetRepo(db *gorm.DB, baseLog *logger.Logger) PlanetRepo {
	return &planetRepo{db: db, log: baseLog.With("repo", "PlanetRepo")}
}

func (r *planetRepo) preloaded(dbc dbctx.Context) *gorm.DB {
	return dbc.Conn(r.db).Preload("Host").Preload("Discovery")
}

func (r *planetRepo) Create(dbc dbctx.Context, rows []*types.Planet) ([]*types.Planet, error) {
	if len(rows) == 0 {
		return []*types.Planet{}, nil
	}
	if err := dbc.Conn(r.db).Omit("Host", "Discovery").Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *planetRepo) GetByID(dbc dbctx.Context, id uint) (*types.Planet, error) {
	return takeByID[types.Planet](r.preloaded(dbc), id)
}

func (r *planetRepo) List(dbc dbctx.Context) ([]*types.Planet, error) {
	return r.Find(dbc)
}

func (r *planetRepo) Find(dbc dbctx.Context, scopes ...Scope) ([]*types.Planet, error) {
	var out []*types.Planet
	q := applyScopes(r.preloaded(dbc).Model(&types.Planet{}), scopes)
	if err := q.Order("planet.id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planetRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.Conn(r.db).Model(&types.Planet{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *planetRepo) Update(dbc dbctx.Context, row *types.Planet) error {
	if row == nil || row.ID == 0 {
		return nil
	}
	return dbc.Conn(r.db).Omit("Host", "Discovery").Save(row).Error
}

func (r *planetRepo) DeleteByID(dbc dbctx.Context, id uint) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&types.Planet{})
	return res.RowsAffected, res.Error
}

// FindOrCreate keys on (name, host, discovery); the remaining attributes apply on creation only.
func (r *planetRepo) FindOrCreate(dbc dbctx.Context, key types.PlanetKey, defaults types.PlanetDefaults) (*types.Planet, bool, error) {
	conn := dbc.Conn(r.db)
	q := conn.Model(&types.Planet{}).
		Where("name = ? AND host_id = ? AND discovery_id = ?", key.Name, key.HostID, key.DiscoveryID)
	return firstOrInsert(q, conn.Omit("Host", "Discovery"), key.NewPlanet(defaults))
}
