package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

type CareerPathFilter struct {
	Search string
	Limit  int
}

type CareerPathRepo interface {
	List(dbc dbctx.Context, f CareerPathFilter) ([]*types.CareerPath, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.CareerPath, error)
	GetByTitles(dbc dbctx.Context, titles []string) ([]*types.CareerPath, error)
	Upsert(dbc dbctx.Context, rows []*types.CareerPath) error
}

type careerPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerPathRepo(db *gorm.DB, baseLog *logger.Logger) CareerPathRepo {
	return &careerPathRepo{db: db, log: baseLog.With("repo", "CareerPathRepo")}
}

func (r *careerPathRepo) List(dbc dbctx.Context, f CareerPathFilter) ([]*types.CareerPath, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	q := txx.WithContext(dbc.Ctx).Model(&types.CareerPath{})
	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+f.Search+"%")
	}
	var out []*types.CareerPath
	if err := q.Order("title ASC").Limit(f.Limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *careerPathRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.CareerPath, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.CareerPath
	if err := txx.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *careerPathRepo) GetByTitles(dbc dbctx.Context, titles []string) ([]*types.CareerPath, error) {
	if len(titles) == 0 {
		return []*types.CareerPath{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.CareerPath
	if err := txx.WithContext(dbc.Ctx).
		Where("title IN ?", titles).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *careerPathRepo) Upsert(dbc dbctx.Context, rows []*types.CareerPath) error {
	if len(rows) == 0 {
		return nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
}
