package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/disha-labs/disha-backend/internal/data/repos/testutil"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
)

func TestUserProgressRepo_UniquePerUserAndQuest(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "progress-uniq@example.com")
	repo := NewUserProgressRepo(tx, log)

	first := &types.UserProgress{
		ID:        uuid.New(),
		UserID:    u.ID,
		QuestType: "career_quiz",
		Status:    types.QuestStatusPending,
		Metadata:  []byte("{}"),
	}
	if _, err := repo.Create(dbc, []*types.UserProgress{first}); err != nil {
		t.Fatalf("create first: %v", err)
	}

	// The same quest for a different user is fine.
	other := testutil.SeedUser(t, ctx, tx, "progress-uniq-other@example.com")
	ok := &types.UserProgress{
		ID:        uuid.New(),
		UserID:    other.ID,
		QuestType: "career_quiz",
		Status:    types.QuestStatusPending,
		Metadata:  []byte("{}"),
	}
	if _, err := repo.Create(dbc, []*types.UserProgress{ok}); err != nil {
		t.Fatalf("create for other user: %v", err)
	}

	dup := &types.UserProgress{
		ID:        uuid.New(),
		UserID:    u.ID,
		QuestType: "career_quiz",
		Status:    types.QuestStatusPending,
		Metadata:  []byte("{}"),
	}
	_, err := repo.Create(dbc, []*types.UserProgress{dup})
	if err == nil {
		t.Fatalf("expected duplicate (user, quest_type) to fail")
	}
	if !errors.Is(apperr.FromDB(err), apperr.ErrConflict) {
		t.Fatalf("expected conflict classification, got %v", err)
	}
}

func TestUserProgressRepo_SummarizeByUser(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "progress-sum@example.com")
	other := testutil.SeedUser(t, ctx, tx, "progress-sum-other@example.com")
	repo := NewUserProgressRepo(tx, log)

	now := time.Now().UTC()
	rows := []*types.UserProgress{
		{ID: uuid.New(), UserID: u.ID, QuestType: "career_quiz", Status: types.QuestStatusCompleted, Points: 50, CompletedAt: &now, Metadata: []byte("{}")},
		{ID: uuid.New(), UserID: u.ID, QuestType: "college_explorer", Status: types.QuestStatusCompleted, Points: 30, CompletedAt: &now, Metadata: []byte("{}")},
		{ID: uuid.New(), UserID: u.ID, QuestType: "scholarship_hunt", Status: types.QuestStatusInProgress, Points: 10, Metadata: []byte("{}")},
		// Another user's points never leak into the summary.
		{ID: uuid.New(), UserID: other.ID, QuestType: "career_quiz", Status: types.QuestStatusCompleted, Points: 999, CompletedAt: &now, Metadata: []byte("{}")},
	}
	if _, err := repo.Create(dbc, rows); err != nil {
		t.Fatalf("seed rows: %v", err)
	}

	sum, err := repo.SummarizeByUser(dbc, u.ID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.TotalPoints != 80 {
		t.Fatalf("expected 80 points from completed quests, got %d", sum.TotalPoints)
	}
	if sum.CompletedQuests != 2 {
		t.Fatalf("expected 2 completed quests, got %d", sum.CompletedQuests)
	}
	if sum.TotalQuests != 3 {
		t.Fatalf("expected 3 total quests, got %d", sum.TotalQuests)
	}
}

func TestUserProgressRepo_SummarizeEmpty(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "progress-empty@example.com")
	repo := NewUserProgressRepo(tx, log)

	sum, err := repo.SummarizeByUser(dbc, u.ID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.TotalPoints != 0 || sum.CompletedQuests != 0 || sum.TotalQuests != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}
