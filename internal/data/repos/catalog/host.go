package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type HostRepo interface {
	Create(dbc dbctx.Context, rows []*types.Host) ([]*types.Host, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Host, error)
	List(dbc dbctx.Context) ([]*types.Host, error)
	Find(dbc dbctx.Context, scopes ...Scope) ([]*types.Host, error)
	Count(dbc dbctx.Context) (int64, error)
	Update(dbc dbctx.Context, row *types.Host) error
	DeleteByID(dbc dbctx.Context, id uint) (int64, error)
	FindOrCreate(dbc dbctx.Context, key types.HostKey, defaults types.HostDefaults) (*types.Host, bool, error)
}

type hostRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHostRepo(db *gorm.DB, baseLog *logger.Logger) HostRepo {
	return &hostRepo{db: db, log: baseLog.With("repo", "HostRepo")}
}

func (r *hostRepo) Create(dbc dbctx.Context, rows []*types.Host) ([]*types.Host, error) {
	if len(rows) == 0 {
		return []*types.Host{}, nil
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *hostRepo) GetByID(dbc dbctx.Context, id uint) (*types.Host, error) {
	return takeByID[types.Host](dbc.Conn(r.db), id)
}

func (r *hostRepo) List(dbc dbctx.Context) ([]*types.Host, error) {
	return r.Find(dbc)
}

func (r *hostRepo) Find(dbc dbctx.Context, scopes ...Scope) ([]*types.Host, error) {
	var out []*types.Host
	q := applyScopes(dbc.Conn(r.db).Model(&types.Host{}), scopes)
	if err := q.Order("host.id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *hostRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.Conn(r.db).Model(&types.Host{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *hostRepo) Update(dbc dbctx.Context, row *types.Host) error {
	if row == nil || row.ID == 0 {
		return nil
	}
	return dbc.Conn(r.db).Save(row).Error
}

func (r *hostRepo) DeleteByID(dbc dbctx.Context, id uint) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&types.Host{})
	return res.RowsAffected, res.Error
}

func (r *hostRepo) FindOrCreate(dbc dbctx.Context, key types.HostKey, defaults types.HostDefaults) (*types.Host, bool, error) {
	conn := dbc.Conn(r.db)
	q := conn.Model(&types.Host{}).
		Where("name = ? AND spectral_type = ?", key.Name, key.SpectralType)
	row, created, err := firstOrInsert(q, conn, key.NewHost(defaults))
	if err != nil {
		return nil, false, err
	}
	if created {
		r.log.Debug("Host created", "host_id", row.ID, "name", row.Name)
	}
	return row, created, nil
}
