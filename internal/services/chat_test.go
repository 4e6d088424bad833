package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	"github.com/disha-labs/disha-backend/internal/data/repos/testutil"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/ctxutil"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

func newChatService(tb testing.TB, tx *gorm.DB, log *logger.Logger) ChatService {
	tb.Helper()
	return NewChatService(tx, log, repos.NewChatConversationRepo(tx, log), repos.NewChatMessageRepo(tx, log))
}

func asPrincipal(ctx context.Context, u *types.User) context.Context {
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: u.ID})
}

func TestChatService_ConversationLifecycle(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "chat-life@example.com")
	ownerCtx := asPrincipal(ctx, owner)
	svc := newChatService(t, tx, log)

	conv, err := svc.CreateConversation(ownerCtx, "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if conv.Title != "New Conversation" || conv.Language != "en" {
		t.Fatalf("expected defaults, got %+v", conv)
	}

	renamed, err := svc.RenameConversation(ownerCtx, conv.ID, "Engineering options")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Title != "Engineering options" {
		t.Fatalf("unexpected title %q", renamed.Title)
	}

	if _, err := svc.RenameConversation(ownerCtx, conv.ID, "  "); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for blank title, got %v", err)
	}

	if err := svc.DeleteConversation(ownerCtx, conv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetConversation(ownerCtx, conv.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestChatService_CrossPrincipalIsolation(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "chat-iso-owner@example.com")
	intruder := testutil.SeedUser(t, ctx, tx, "chat-iso-intruder@example.com")
	conv := testutil.SeedConversation(t, ctx, tx, owner.ID)
	svc := newChatService(t, tx, log)
	intruderCtx := asPrincipal(ctx, intruder)

	// Every operation on a foreign conversation reads as not-found.
	if _, err := svc.GetConversation(intruderCtx, conv.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.RenameConversation(intruderCtx, conv.ID, "hijack"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("rename: expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteConversation(intruderCtx, conv.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListMessages(intruderCtx, conv.ID, time.Time{}, 0); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("list messages: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.AppendMessage(intruderCtx, conv.ID, "hello", true); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("append: expected ErrNotFound, got %v", err)
	}

	list, err := svc.ListConversations(intruderCtx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no foreign conversations, got %d", len(list))
	}
}

func TestChatService_AppendAndListMessages(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "chat-msg@example.com")
	conv := testutil.SeedConversation(t, ctx, tx, owner.ID)
	svc := newChatService(t, tx, log)
	ownerCtx := asPrincipal(ctx, owner)

	if _, err := svc.AppendMessage(ownerCtx, conv.ID, "   ", true); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for blank content, got %v", err)
	}

	q, err := svc.AppendMessage(ownerCtx, conv.ID, "What can I do after 12th science?", true)
	if err != nil {
		t.Fatalf("append question: %v", err)
	}
	a, err := svc.AppendMessage(ownerCtx, conv.ID, "You could look at engineering or medicine.", false)
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if a.IsUser {
		t.Fatalf("expected assistant message")
	}

	msgs, err := svc.ListMessages(ownerCtx, conv.ID, time.Time{}, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 || msgs[0].ID != q.ID || msgs[1].ID != a.ID {
		t.Fatalf("unexpected order: %+v", msgs)
	}

	if _, err := svc.AppendMessage(ownerCtx, uuid.New(), "lost", true); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing parent, got %v", err)
	}
}

func TestChatService_RequiresPrincipal(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	svc := newChatService(t, tx, log)

	if _, err := svc.CreateConversation(context.Background(), "t", "en"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
