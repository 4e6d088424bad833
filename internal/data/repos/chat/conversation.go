package chat

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

// ChatConversationRepo scopes every lookup and mutation to the owning user.
// A conversation id belonging to another user behaves exactly like a
// missing row.
type ChatConversationRepo interface {
	Create(dbc dbctx.Context, rows []*types.ChatConversation) ([]*types.ChatConversation, error)
	GetOwned(dbc dbctx.Context, id, userID uuid.UUID) (*types.ChatConversation, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.ChatConversation, error)
	UpdateFields(dbc dbctx.Context, id, userID uuid.UUID, updates map[string]interface{}) error
	DeleteOwned(dbc dbctx.Context, id, userID uuid.UUID) error
}

type chatConversationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatConversationRepo(db *gorm.DB, baseLog *logger.Logger) ChatConversationRepo {
	return &chatConversationRepo{db: db, log: baseLog.With("repo", "ChatConversationRepo")}
}

func (r *chatConversationRepo) Create(dbc dbctx.Context, rows []*types.ChatConversation) ([]*types.ChatConversation, error) {
	if len(rows) == 0 {
		return []*types.ChatConversation{}, nil
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

func (r *chatConversationRepo) GetOwned(dbc dbctx.Context, id, userID uuid.UUID) (*types.ChatConversation, error) {
	if id == uuid.Nil || userID == uuid.Nil {
		return nil, fmt.Errorf("missing id or user_id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out types.ChatConversation
	if err := txx.WithContext(dbc.Ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *chatConversationRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.ChatConversation, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.ChatConversation
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.ChatConversation{}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *chatConversationRepo) UpdateFields(dbc dbctx.Context, id, userID uuid.UUID, updates map[string]interface{}) error {
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
		Model(&types.ChatConversation{}).
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

func (r *chatConversationRepo) DeleteOwned(dbc dbctx.Context, id, userID uuid.UUID) error {
	if id == uuid.Nil || userID == uuid.Nil {
		return fmt.Errorf("missing id or user_id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.ChatConversation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
