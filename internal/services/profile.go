package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/ctxutil"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

// ProfileUpdate carries a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	FullName          *string
	Phone             *string
	PreferredLanguage *string
	EducationLevel    *string
	Interests         []string
	Location          *string
}

type ProfileService interface {
	Get(ctx context.Context) (*types.Profile, error)
	Update(ctx context.Context, upd ProfileUpdate) (*types.Profile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	return &profileService{db: db, log: log.With("service", "ProfileService"), profileRepo: profileRepo}
}

func (ps *profileService) Get(ctx context.Context) (*types.Profile, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	profile, err := ps.profileRepo.GetByID(dbctx.Context{Ctx: ctx}, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile: %w", apperr.FromDB(err))
	}
	return profile, nil
}

func (ps *profileService) Update(ctx context.Context, upd ProfileUpdate) (*types.Profile, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}

	updates := map[string]interface{}{}
	if upd.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*upd.FullName)
	}
	if upd.Phone != nil {
		updates["phone"] = strings.TrimSpace(*upd.Phone)
	}
	if upd.PreferredLanguage != nil {
		lang := strings.ToLower(strings.TrimSpace(*upd.PreferredLanguage))
		if lang == "" {
			return nil, apperr.Invalid("preferred_language cannot be empty")
		}
		updates["preferred_language"] = lang
	}
	if upd.EducationLevel != nil {
		updates["education_level"] = strings.TrimSpace(*upd.EducationLevel)
	}
	if upd.Interests != nil {
		raw, err := json.Marshal(upd.Interests)
		if err != nil {
			return nil, apperr.Invalid("interests: %v", err)
		}
		updates["interests"] = raw
	}
	if upd.Location != nil {
		updates["location"] = strings.TrimSpace(*upd.Location)
	}
	if len(updates) == 0 {
		return nil, apperr.Invalid("no fields to update")
	}

	var profile *types.Profile
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := ps.profileRepo.UpdateFields(dbc, rd.UserID, updates); err != nil {
			return fmt.Errorf("error updating profile: %w", apperr.FromDB(err))
		}
		p, err := ps.profileRepo.GetByID(dbc, rd.UserID)
		if err != nil {
			return fmt.Errorf("error reloading profile: %w", apperr.FromDB(err))
		}
		profile = p
		return nil
	}); err != nil {
		return nil, err
	}
	return profile, nil
}
