package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos/testutil"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
)

func TestChatConversationRepo_GetOwnedScopesToOwner(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	owner := testutil.SeedUser(t, ctx, tx, "conv-owner@example.com")
	other := testutil.SeedUser(t, ctx, tx, "conv-other@example.com")
	conv := testutil.SeedConversation(t, ctx, tx, owner.ID)

	repo := NewChatConversationRepo(tx, log)

	got, err := repo.GetOwned(dbc, conv.ID, owner.ID)
	if err != nil {
		t.Fatalf("get owned: %v", err)
	}
	if got.ID != conv.ID {
		t.Fatalf("unexpected conversation: %+v", got)
	}

	// Another principal sees the row as missing, not forbidden.
	_, err = repo.GetOwned(dbc, conv.ID, other.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign owner, got %v", err)
	}
}

func TestChatConversationRepo_UpdateAndDeleteOwned(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	owner := testutil.SeedUser(t, ctx, tx, "conv-upd@example.com")
	other := testutil.SeedUser(t, ctx, tx, "conv-upd-other@example.com")
	conv := testutil.SeedConversation(t, ctx, tx, owner.ID)

	repo := NewChatConversationRepo(tx, log)

	err := repo.UpdateFields(dbc, conv.ID, other.ID, map[string]interface{}{"title": "stolen"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign update, got %v", err)
	}
	if err := repo.UpdateFields(dbc, conv.ID, owner.ID, map[string]interface{}{"title": "renamed"}); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	got, err := repo.GetOwned(dbc, conv.ID, owner.ID)
	if err != nil {
		t.Fatalf("get after rename: %v", err)
	}
	if got.Title != "renamed" {
		t.Fatalf("expected renamed title, got %q", got.Title)
	}

	err = repo.DeleteOwned(dbc, conv.ID, other.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign delete, got %v", err)
	}
	if err := repo.DeleteOwned(dbc, conv.ID, owner.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	_, err = repo.GetOwned(dbc, conv.ID, owner.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected deleted conversation to be gone, got %v", err)
	}
}

func TestChatConversationRepo_ListByUserNewestFirst(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	owner := testutil.SeedUser(t, ctx, tx, "conv-list@example.com")
	repo := NewChatConversationRepo(tx, log)

	older := &types.ChatConversation{ID: uuid.New(), UserID: owner.ID, Title: "old", Language: "en"}
	newer := &types.ChatConversation{ID: uuid.New(), UserID: owner.ID, Title: "new", Language: "en"}
	if err := tx.WithContext(ctx).Create(older).Error; err != nil {
		t.Fatalf("seed older: %v", err)
	}
	if err := tx.WithContext(ctx).Create(newer).Error; err != nil {
		t.Fatalf("seed newer: %v", err)
	}
	// Force distinct updated_at values regardless of clock resolution.
	if err := tx.WithContext(ctx).Model(older).Update("updated_at", time.Now().UTC().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate older: %v", err)
	}

	out, err := repo.ListByUser(dbc, owner.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(out))
	}
	if out[0].ID != newer.ID || out[1].ID != older.ID {
		t.Fatalf("expected newest first, got %q then %q", out[0].Title, out[1].Title)
	}

	limited, err := repo.ListByUser(dbc, owner.ID, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != newer.ID {
		t.Fatalf("expected only newest conversation, got %+v", limited)
	}
}

func TestChatMessageRepo_ListOrderingAndSince(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	owner := testutil.SeedUser(t, ctx, tx, "msg-list@example.com")
	conv := testutil.SeedConversation(t, ctx, tx, owner.ID)
	repo := NewChatMessageRepo(tx, log)

	base := time.Now().UTC().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		m := &types.ChatMessage{
			ID:             uuid.New(),
			ConversationID: conv.ID,
			Content:        content,
			IsUser:         i%2 == 0,
		}
		if _, err := repo.Create(dbc, []*types.ChatMessage{m}); err != nil {
			t.Fatalf("create %q: %v", content, err)
		}
		if err := tx.WithContext(ctx).Model(m).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error; err != nil {
			t.Fatalf("backdate %q: %v", content, err)
		}
	}

	all, err := repo.ListByConversation(dbc, conv.ID, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(all))
	}
	for i, want := range []string{"first", "second", "third"} {
		if all[i].Content != want {
			t.Fatalf("position %d: want %q got %q", i, want, all[i].Content)
		}
	}

	since, err := repo.ListSince(dbc, conv.ID, base.Add(30*time.Second), 0)
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(since) != 2 || since[0].Content != "second" {
		t.Fatalf("unexpected since window: %+v", since)
	}
}
