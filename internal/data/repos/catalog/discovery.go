package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type DiscoveryRepo interface {
	Create(dbc dbctx.Context, rows []*types.Discovery) ([]*types.Discovery, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Discovery, error)
	List(dbc dbctx.Context) ([]*types.Discovery, error)
	Update(dbc dbctx.Context, row *types.Discovery) error
	DeleteByID(dbc dbctx.Context, id uint) (int64, error)
	FindOrCreate(dbc dbctx.Context, key types.DiscoveryKey, defaults types.DiscoveryDefaults) (*types.Discovery, bool, error)
}

type discoveryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiscoveryRepo(db *gorm.DB, baseLog *logger.Logger) DiscoveryRepo {
	return &discoveryRepo{db: db, log: baseLog.With("repo", "DiscoveryRepo")}
}

func (r *discoveryRepo) Create(dbc dbctx.Context, rows []*types.Discovery) ([]*types.Discovery, error) {
	if len(rows) == 0 {
		return []*types.Discovery{}, nil
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *discoveryRepo) GetByID(dbc dbctx.Context, id uint) (*types.Discovery, error) {
	return takeByID[types.Discovery](dbc.Conn(r.db), id)
}

func (r *discoveryRepo) List(dbc dbctx.Context) ([]*types.Discovery, error) {
	var out []*types.Discovery
	if err := dbc.Conn(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *discoveryRepo) Update(dbc dbctx.Context, row *types.Discovery) error {
	if row == nil || row.ID == 0 {
		return nil
	}
	return dbc.Conn(r.db).Save(row).Error
}

func (r *discoveryRepo) DeleteByID(dbc dbctx.Context, id uint) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&types.Discovery{})
	return res.RowsAffected, res.Error
}

// FindOrCreate leaves facility and telescope untouched on an existing row.
func (r *discoveryRepo) FindOrCreate(dbc dbctx.Context, key types.DiscoveryKey, defaults types.DiscoveryDefaults) (*types.Discovery, bool, error) {
	conn := dbc.Conn(r.db)
	q := conn.Model(&types.Discovery{}).
		Where("method = ? AND reference_name = ?", key.Method, key.ReferenceName)
	q = whereNullable(q, "year", key.Year)
	return firstOrInsert(q, conn, key.NewDiscovery(defaults))
}
