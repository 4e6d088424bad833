package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/ctxutil"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

type ChatService interface {
	CreateConversation(ctx context.Context, title, language string) (*types.ChatConversation, error)
	ListConversations(ctx context.Context, limit int) ([]*types.ChatConversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*types.ChatConversation, error)
	RenameConversation(ctx context.Context, id uuid.UUID, title string) (*types.ChatConversation, error)
	DeleteConversation(ctx context.Context, id uuid.UUID) error
	ListMessages(ctx context.Context, conversationID uuid.UUID, after time.Time, limit int) ([]*types.ChatMessage, error)
	AppendMessage(ctx context.Context, conversationID uuid.UUID, content string, isUser bool) (*types.ChatMessage, error)
}

type chatService struct {
	db               *gorm.DB
	log              *logger.Logger
	conversationRepo repos.ChatConversationRepo
	messageRepo      repos.ChatMessageRepo
}

func NewChatService(
	db *gorm.DB,
	log *logger.Logger,
	conversationRepo repos.ChatConversationRepo,
	messageRepo repos.ChatMessageRepo,
) ChatService {
	return &chatService{
		db:               db,
		log:              log.With("service", "ChatService"),
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

func (cs *chatService) principal(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	return rd.UserID, nil
}

func (cs *chatService) CreateConversation(ctx context.Context, title, language string) (*types.ChatConversation, error) {
	userID, err := cs.principal(ctx)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New Conversation"
	}
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = "en"
	}
	conversation := &types.ChatConversation{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Language: language,
	}
	if _, err := cs.conversationRepo.Create(dbctx.Context{Ctx: ctx}, []*types.ChatConversation{conversation}); err != nil {
		return nil, fmt.Errorf("error creating conversation: %w", apperr.FromDB(err))
	}
	return conversation, nil
}

func (cs *chatService) ListConversations(ctx context.Context, limit int) ([]*types.ChatConversation, error) {
	userID, err := cs.principal(ctx)
	if err != nil {
		return nil, err
	}
	out, err := cs.conversationRepo.ListByUser(dbctx.Context{Ctx: ctx}, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	return out, nil
}

func (cs *chatService) GetConversation(ctx context.Context, id uuid.UUID) (*types.ChatConversation, error) {
	userID, err := cs.principal(ctx)
	if err != nil {
		return nil, err
	}
	conversation, err := cs.conversationRepo.GetOwned(dbctx.Context{Ctx: ctx}, id, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching conversation: %w", apperr.FromDB(err))
	}
	return conversation, nil
}

func (cs *chatService) RenameConversation(ctx context.Context, id uuid.UUID, title string) (*types.ChatConversation, error) {
	userID, err := cs.principal(ctx)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Invalid("title cannot be empty")
	}
	var conversation *types.ChatConversation
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := cs.conversationRepo.UpdateFields(dbc, id, userID, map[string]interface{}{"title": title}); err != nil {
			return fmt.Errorf("error renaming conversation: %w", apperr.FromDB(err))
		}
		c, err := cs.conversationRepo.GetOwned(dbc, id, userID)
		if err != nil {
			return fmt.Errorf("error reloading conversation: %w", apperr.FromDB(err))
		}
		conversation = c
		return nil
	}); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (cs *chatService) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	userID, err := cs.principal(ctx)
	if err != nil {
		return err
	}
	if err := cs.conversationRepo.DeleteOwned(dbctx.Context{Ctx: ctx}, id, userID); err != nil {
		return fmt.Errorf("error deleting conversation: %w", apperr.FromDB(err))
	}
	return nil
}

func (cs *chatService) ListMessages(ctx context.Context, conversationID uuid.UUID, after time.Time, limit int) ([]*types.ChatMessage, error) {
	userID, err := cs.principal(ctx)
	if err != nil {
		return nil, err
	}
	// Ownership of the parent gates all message reads.
	if _, err := cs.conversationRepo.GetOwned(dbctx.Context{Ctx: ctx}, conversationID, userID); err != nil {
		return nil, fmt.Errorf("error fetching conversation: %w", apperr.FromDB(err))
	}
	var out []*types.ChatMessage
	if after.IsZero() {
		out, err = cs.messageRepo.ListByConversation(dbctx.Context{Ctx: ctx}, conversationID, limit)
	} else {
		out, err = cs.messageRepo.ListSince(dbctx.Context{Ctx: ctx}, conversationID, after, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return out, nil
}

func (cs *chatService) AppendMessage(ctx context.Context, conversationID uuid.UUID, content string, isUser bool) (*types.ChatMessage, error) {
	userID, err := cs.principal(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Invalid("content cannot be empty")
	}

	var message *types.ChatMessage
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		// Insert is permitted only when the parent conversation exists and
		// belongs to the requesting principal.
		if _, err := cs.conversationRepo.GetOwned(dbc, conversationID, userID); err != nil {
			return fmt.Errorf("error fetching conversation: %w", apperr.FromDB(err))
		}
		message = &types.ChatMessage{
			ID:             uuid.New(),
			ConversationID: conversationID,
			Content:        content,
			IsUser:         isUser,
		}
		if _, err := cs.messageRepo.Create(dbc, []*types.ChatMessage{message}); err != nil {
			return fmt.Errorf("error creating message: %w", apperr.FromDB(err))
		}
		// Bump the conversation so it sorts to the top of the sidebar.
		if err := cs.conversationRepo.UpdateFields(dbc, conversationID, userID, map[string]interface{}{}); err != nil {
			return fmt.Errorf("error touching conversation: %w", apperr.FromDB(err))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return message, nil
}
