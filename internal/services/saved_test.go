package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	"github.com/disha-labs/disha-backend/internal/data/repos/testutil"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

func newSavedItemService(tb testing.TB, tx *gorm.DB, log *logger.Logger) SavedItemService {
	tb.Helper()
	return NewSavedItemService(
		tx,
		log,
		repos.NewUserSavedItemRepo(tx, log),
		repos.NewCollegeRepo(tx, log),
		repos.NewScholarshipRepo(tx, log),
		repos.NewCareerPathRepo(tx, log),
	)
}

func TestSavedItemService_SaveResolvesTarget(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "save-target@example.com")
	college := testutil.SeedCollege(t, ctx, tx, "Save Target College", "KA")
	svc := newSavedItemService(t, tx, log)
	uctx := asPrincipal(ctx, u)

	item, err := svc.Save(uctx, types.SavedItemCollege, college.ID, "  shortlist  ")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if item.Notes != "shortlist" {
		t.Fatalf("expected trimmed notes, got %q", item.Notes)
	}

	// A target that does not exist cannot be bookmarked.
	_, err = svc.Save(uctx, types.SavedItemCareer, uuid.New(), "")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing target, got %v", err)
	}

	_, err = svc.Save(uctx, "playlist", college.ID, "")
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown type, got %v", err)
	}
}

func TestSavedItemService_InactiveScholarshipNotSaveable(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "save-inactive@example.com")
	inactive := testutil.SeedScholarship(t, ctx, tx, "Closed Scholarship", false)
	svc := newSavedItemService(t, tx, log)
	uctx := asPrincipal(ctx, u)

	_, err := svc.Save(uctx, types.SavedItemScholarship, inactive.ID, "")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive scholarship, got %v", err)
	}
}

func TestSavedItemService_DuplicateSaveConflicts(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "save-dup@example.com")
	career := testutil.SeedCareerPath(t, ctx, tx, "Duplicate Career")
	svc := newSavedItemService(t, tx, log)
	uctx := asPrincipal(ctx, u)

	if _, err := svc.Save(uctx, types.SavedItemCareer, career.ID, ""); err != nil {
		t.Fatalf("first save: %v", err)
	}
	_, err := svc.Save(uctx, types.SavedItemCareer, career.ID, "")
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate save, got %v", err)
	}
}

func TestSavedItemService_ListAndDeleteArePerUser(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "save-list@example.com")
	other := testutil.SeedUser(t, ctx, tx, "save-list-other@example.com")
	college := testutil.SeedCollege(t, ctx, tx, "Per User College", "MH")
	scholarship := testutil.SeedScholarship(t, ctx, tx, "Per User Scholarship", true)
	svc := newSavedItemService(t, tx, log)
	uctx := asPrincipal(ctx, u)
	otherCtx := asPrincipal(ctx, other)

	saved, err := svc.Save(uctx, types.SavedItemCollege, college.ID, "")
	if err != nil {
		t.Fatalf("save college: %v", err)
	}
	if _, err := svc.Save(uctx, types.SavedItemScholarship, scholarship.ID, ""); err != nil {
		t.Fatalf("save scholarship: %v", err)
	}

	mine, err := svc.List(uctx, "")
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 items, got %d", len(mine))
	}
	onlyColleges, err := svc.List(uctx, types.SavedItemCollege)
	if err != nil {
		t.Fatalf("list colleges: %v", err)
	}
	if len(onlyColleges) != 1 || onlyColleges[0].ItemID != college.ID {
		t.Fatalf("unexpected filter result: %+v", onlyColleges)
	}
	if _, err := svc.List(uctx, "playlist"); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown filter, got %v", err)
	}

	theirs, err := svc.List(otherCtx, "")
	if err != nil {
		t.Fatalf("list theirs: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("expected foreign list to be empty, got %d", len(theirs))
	}

	if err := svc.Delete(otherCtx, saved.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(uctx, saved.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
