package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type SystemParameterReferenceRepo interface {
	Create(dbc dbctx.Context, rows []*types.SystemParameterReference) ([]*types.SystemParameterReference, error)
	GetByID(dbc dbctx.Context, id uint) (*types.SystemParameterReference, error)
	List(dbc dbctx.Context) ([]*types.SystemParameterReference, error)
	Update(dbc dbctx.Context, row *types.SystemParameterReference) error
	DeleteByID(dbc dbctx.Context, id uint) (int64, error)
	FindOrCreate(dbc dbctx.Context, key types.SystemParameterReferenceKey, defaults types.SystemParameterReferenceDefaults) (*types.SystemParameterReference, bool, error)
}

type systemParameterReferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSystemParameterReferenceRepo(db *gorm.DB, baseLog *logger.Logger) SystemParameterReferenceRepo {
	return &systemParameterReferenceRepo{db: db, log: baseLog.With("repo", "SystemParameterReferenceRepo")}
}

func (r *systemParameterReferenceRepo) Create(dbc dbctx.Context, rows []*types.SystemParameterReference) ([]*types.SystemParameterReference, error) {
	if len(rows) == 0 {
		return []*types.SystemParameterReference{}, nil
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *systemParameterReferenceRepo) GetByID(dbc dbctx.Context, id uint) (*types.SystemParameterReference, error) {
	return takeByID[types.SystemParameterReference](dbc.Conn(r.db), id)
}

func (r *systemParameterReferenceRepo) List(dbc dbctx.Context) ([]*types.SystemParameterReference, error) {
	var out []*types.SystemParameterReference
	if err := dbc.Conn(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *systemParameterReferenceRepo) Update(dbc dbctx.Context, row *types.SystemParameterReference) error {
	if row == nil || row.ID == 0 {
		return nil
	}
	return dbc.Conn(r.db).Save(row).Error
}

func (r *systemParameterReferenceRepo) DeleteByID(dbc dbctx.Context, id uint) (int64, error) {
	if id == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&types.SystemParameterReference{})
	return res.RowsAffected, res.Error
}

// FindOrCreate matches all five key columns; a nil degree value only matches a stored NULL.
func (r *systemParameterReferenceRepo) FindOrCreate(dbc dbctx.Context, key types.SystemParameterReferenceKey, defaults types.SystemParameterReferenceDefaults) (*types.SystemParameterReference, bool, error) {
	conn := dbc.Conn(r.db)
	q := conn.Model(&types.SystemParameterReference{}).
		Where("name = ? AND right_ascension = ? AND declination = ?", key.Name, key.RightAscension, key.Declination)
	q = whereNullable(q, "ra_degrees", key.RADegrees)
	q = whereNullable(q, "dec_degrees", key.DecDegrees)
	return firstOrInsert(q, conn, key.NewReference(defaults))
}
