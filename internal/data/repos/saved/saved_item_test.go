package saved

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos/testutil"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
)

func TestUserSavedItemRepo_ListByUserWithTypeFilter(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "saved-list@example.com")
	other := testutil.SeedUser(t, ctx, tx, "saved-list-other@example.com")
	college := testutil.SeedCollege(t, ctx, tx, "List College", "KA")
	career := testutil.SeedCareerPath(t, ctx, tx, "List Career")
	repo := NewUserSavedItemRepo(tx, log)

	rows := []*types.UserSavedItem{
		{ID: uuid.New(), UserID: u.ID, ItemType: types.SavedItemCollege, ItemID: college.ID},
		{ID: uuid.New(), UserID: u.ID, ItemType: types.SavedItemCareer, ItemID: career.ID},
		{ID: uuid.New(), UserID: other.ID, ItemType: types.SavedItemCollege, ItemID: college.ID},
	}
	if _, err := repo.Create(dbc, rows); err != nil {
		t.Fatalf("seed rows: %v", err)
	}

	all, err := repo.ListByUser(dbc, u.ID, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 items for owner, got %d", len(all))
	}

	colleges, err := repo.ListByUser(dbc, u.ID, types.SavedItemCollege)
	if err != nil {
		t.Fatalf("list colleges: %v", err)
	}
	if len(colleges) != 1 || colleges[0].ItemID != college.ID {
		t.Fatalf("unexpected filtered result: %+v", colleges)
	}
}

func TestUserSavedItemRepo_DeleteOwnedScopesToOwner(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "saved-del@example.com")
	other := testutil.SeedUser(t, ctx, tx, "saved-del-other@example.com")
	college := testutil.SeedCollege(t, ctx, tx, "Delete College", "MH")
	repo := NewUserSavedItemRepo(tx, log)

	row := &types.UserSavedItem{ID: uuid.New(), UserID: u.ID, ItemType: types.SavedItemCollege, ItemID: college.ID}
	if _, err := repo.Create(dbc, []*types.UserSavedItem{row}); err != nil {
		t.Fatalf("seed row: %v", err)
	}

	err := repo.DeleteOwned(dbc, row.ID, other.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign delete, got %v", err)
	}
	if err := repo.DeleteOwned(dbc, row.ID, u.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	left, err := repo.ListByUser(dbc, u.ID, "")
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected no items after delete, got %d", len(left))
	}
}

func TestUserSavedItemRepo_DuplicateTripleConflicts(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "saved-dup@example.com")
	college := testutil.SeedCollege(t, ctx, tx, "Dup College", "TN")
	repo := NewUserSavedItemRepo(tx, log)

	first := &types.UserSavedItem{ID: uuid.New(), UserID: u.ID, ItemType: types.SavedItemCollege, ItemID: college.ID}
	if _, err := repo.Create(dbc, []*types.UserSavedItem{first}); err != nil {
		t.Fatalf("create first: %v", err)
	}

	dup := &types.UserSavedItem{ID: uuid.New(), UserID: u.ID, ItemType: types.SavedItemCollege, ItemID: college.ID}
	_, err := repo.Create(dbc, []*types.UserSavedItem{dup})
	if err == nil {
		t.Fatalf("expected duplicate save to fail")
	}
	if !errors.Is(apperr.FromDB(err), apperr.ErrConflict) {
		t.Fatalf("expected conflict classification, got %v", err)
	}
}
