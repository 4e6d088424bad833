package progress

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

type Summary struct {
	TotalPoints     int   `json:"total_points"`
	CompletedQuests int64 `json:"completed_quests"`
	TotalQuests     int64 `json:"total_quests"`
}

type UserProgressRepo interface {
	Create(dbc dbctx.Context, rows []*types.UserProgress) ([]*types.UserProgress, error)
	GetByUserAndQuest(dbc dbctx.Context, userID uuid.UUID, questType string) (*types.UserProgress, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.UserProgress, error)
	UpdateFields(dbc dbctx.Context, id, userID uuid.UUID, updates map[string]interface{}) error
	SummarizeByUser(dbc dbctx.Context, userID uuid.UUID) (*Summary, error)
}

type userProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserProgressRepo(db *gorm.DB, baseLog *logger.Logger) UserProgressRepo {
	return &userProgressRepo{db: db, log: baseLog.With("repo", "UserProgressRepo")}
}

func (r *userProgressRepo) Create(dbc dbctx.Context, rows []*types.UserProgress) ([]*types.UserProgress, error) {
	if len(rows) == 0 {
		return []*types.UserProgress{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userProgressRepo) GetByUserAndQuest(dbc dbctx.Context, userID uuid.UUID, questType string) (*types.UserProgress, error) {
	if userID == uuid.Nil || questType == "" {
		return nil, fmt.Errorf("missing user_id or quest_type")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.UserProgress
	if err := txx.WithContext(dbc.Ctx).
		Where("user_id = ? AND quest_type = ?", userID, questType).
		Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userProgressRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.UserProgress, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.UserProgress
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.UserProgress{}).
		Where("user_id = ?", userID).
		Order("quest_type ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userProgressRepo) UpdateFields(dbc dbctx.Context, id, userID uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil || userID == uuid.Nil {
		return fmt.Errorf("missing id or user_id")
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now().UTC()
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).
		Model(&types.UserProgress{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userProgressRepo) SummarizeByUser(dbc dbctx.Context, userID uuid.UUID) (*Summary, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var s Summary
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.UserProgress{}).
		Select("COALESCE(SUM(points), 0)").
		Where("user_id = ? AND status = ?", userID, types.QuestStatusCompleted).
		Scan(&s.TotalPoints).Error; err != nil {
		return nil, err
	}
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.UserProgress{}).
		Where("user_id = ? AND status = ?", userID, types.QuestStatusCompleted).
		Count(&s.CompletedQuests).Error; err != nil {
		return nil, err
	}
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.UserProgress{}).
		Where("user_id = ?", userID).
		Count(&s.TotalQuests).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
