package saved

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

type UserSavedItemRepo interface {
	Create(dbc dbctx.Context, rows []*types.UserSavedItem) ([]*types.UserSavedItem, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, itemType string) ([]*types.UserSavedItem, error)
	DeleteOwned(dbc dbctx.Context, id, userID uuid.UUID) error
}

type userSavedItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserSavedItemRepo(db *gorm.DB, baseLog *logger.Logger) UserSavedItemRepo {
	return &userSavedItemRepo{db: db, log: baseLog.With("repo", "UserSavedItemRepo")}
}

func (r *userSavedItemRepo) Create(dbc dbctx.Context, rows []*types.UserSavedItem) ([]*types.UserSavedItem, error) {
	if len(rows) == 0 {
		return []*types.UserSavedItem{}, nil
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

func (r *userSavedItemRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, itemType string) ([]*types.UserSavedItem, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	q := txx.WithContext(dbc.Ctx).
		Model(&types.UserSavedItem{}).
		Where("user_id = ?", userID)
	if itemType != "" {
		q = q.Where("item_type = ?", itemType)
	}
	var out []*types.UserSavedItem
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userSavedItemRepo) DeleteOwned(dbc dbctx.Context, id, userID uuid.UUID) error {
	if id == uuid.Nil || userID == uuid.Nil {
		return fmt.Errorf("missing id or user_id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.UserSavedItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
