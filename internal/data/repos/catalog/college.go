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

type CollegeFilter struct {
	Type   string
	State  string
	Search string
	Limit  int
}

type CollegeRepo interface {
	List(dbc dbctx.Context, f CollegeFilter) ([]*types.College, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.College, error)
	GetByNames(dbc dbctx.Context, names []string) ([]*types.College, error)
	// Upsert is only reached from the seedcatalog command; the API surface
	// has no write path into reference tables.
	Upsert(dbc dbctx.Context, rows []*types.College) error
}

type collegeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollegeRepo(db *gorm.DB, baseLog *logger.Logger) CollegeRepo {
	return &collegeRepo{db: db, log: baseLog.With("repo", "CollegeRepo")}
}

func (r *collegeRepo) List(dbc dbctx.Context, f CollegeFilter) ([]*types.College, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	q := txx.WithContext(dbc.Ctx).Model(&types.College{})
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+f.Search+"%")
	}
	var out []*types.College
	if err := q.Order("ranking ASC, name ASC").Limit(f.Limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *collegeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.College, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.College
	if err := txx.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *collegeRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.College, error) {
	if len(names) == 0 {
		return []*types.College{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.College
	if err := txx.WithContext(dbc.Ctx).
		Where("name IN ?", names).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *collegeRepo) Upsert(dbc dbctx.Context, rows []*types.College) error {
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
