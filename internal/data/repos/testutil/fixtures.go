package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/disha-labs/disha-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		FullName: "Seed User",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	p := &types.Profile{
		ID:                u.ID,
		FullName:          u.FullName,
		PreferredLanguage: "en",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return u
}

func SeedConversation(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.ChatConversation {
	tb.Helper()
	c := &types.ChatConversation{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "New Conversation",
		Language: "en",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed conversation: %v", err)
	}
	return c
}

func SeedCollege(tb testing.TB, ctx context.Context, tx *gorm.DB, name, state string) *types.College {
	tb.Helper()
	c := &types.College{
		ID:    uuid.New(),
		Name:  name,
		Type:  "government",
		State: state,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed college: %v", err)
	}
	return c
}

func SeedScholarship(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, active bool) *types.Scholarship {
	tb.Helper()
	s := &types.Scholarship{
		ID:          uuid.New(),
		Title:       title,
		Description: "desc",
		Category:    "merit",
		IsActive:    active,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed scholarship: %v", err)
	}
	return s
}

func SeedCareerPath(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.CareerPath {
	tb.Helper()
	cp := &types.CareerPath{
		ID:          uuid.New(),
		Title:       title,
		Description: "desc",
	}
	if err := tx.WithContext(ctx).Create(cp).Error; err != nil {
		tb.Fatalf("seed career path: %v", err)
	}
	return cp
}
