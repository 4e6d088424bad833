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

type ScholarshipFilter struct {
	Category string
	Search   string
	Limit    int
}

// ScholarshipRepo never exposes inactive rows to readers; both ListActive
// and GetActiveByID filter on is_active.
type ScholarshipRepo interface {
	ListActive(dbc dbctx.Context, f ScholarshipFilter) ([]*types.Scholarship, error)
	GetActiveByID(dbc dbctx.Context, id uuid.UUID) (*types.Scholarship, error)
	GetByTitles(dbc dbctx.Context, titles []string) ([]*types.Scholarship, error)
	Upsert(dbc dbctx.Context, rows []*types.Scholarship) error
}

type scholarshipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScholarshipRepo(db *gorm.DB, baseLog *logger.Logger) ScholarshipRepo {
	return &scholarshipRepo{db: db, log: baseLog.With("repo", "ScholarshipRepo")}
}

func (r *scholarshipRepo) ListActive(dbc dbctx.Context, f ScholarshipFilter) ([]*types.Scholarship, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	q := txx.WithContext(dbc.Ctx).
		Model(&types.Scholarship{}).
		Where("is_active = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+f.Search+"%")
	}
	var out []*types.Scholarship
	if err := q.Order("deadline ASC NULLS LAST").Limit(f.Limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *scholarshipRepo) GetActiveByID(dbc dbctx.Context, id uuid.UUID) (*types.Scholarship, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.Scholarship
	if err := txx.WithContext(dbc.Ctx).
		Where("id = ? AND is_active = ?", id, true).
		Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *scholarshipRepo) GetByTitles(dbc dbctx.Context, titles []string) ([]*types.Scholarship, error) {
	if len(titles) == 0 {
		return []*types.Scholarship{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Scholarship
	if err := txx.WithContext(dbc.Ctx).
		Where("title IN ?", titles).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *scholarshipRepo) Upsert(dbc dbctx.Context, rows []*types.Scholarship) error {
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
