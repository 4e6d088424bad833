package services

import (
	"context"
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

type SavedItemService interface {
	List(ctx context.Context, itemType string) ([]*types.UserSavedItem, error)
	// Save bookmarks a catalog item. Saving the same item twice surfaces
	// the unique (user_id, item_type, item_id) violation as a conflict.
	Save(ctx context.Context, itemType string, itemID uuid.UUID, notes string) (*types.UserSavedItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type savedItemService struct {
	db              *gorm.DB
	log             *logger.Logger
	savedRepo       repos.UserSavedItemRepo
	collegeRepo     repos.CollegeRepo
	scholarshipRepo repos.ScholarshipRepo
	careerPathRepo  repos.CareerPathRepo
}

func NewSavedItemService(
	db *gorm.DB,
	log *logger.Logger,
	savedRepo repos.UserSavedItemRepo,
	collegeRepo repos.CollegeRepo,
	scholarshipRepo repos.ScholarshipRepo,
	careerPathRepo repos.CareerPathRepo,
) SavedItemService {
	return &savedItemService{
		db:              db,
		log:             log.With("service", "SavedItemService"),
		savedRepo:       savedRepo,
		collegeRepo:     collegeRepo,
		scholarshipRepo: scholarshipRepo,
		careerPathRepo:  careerPathRepo,
	}
}

var validItemTypes = map[string]struct{}{
	types.SavedItemCollege:     {},
	types.SavedItemScholarship: {},
	types.SavedItemCareer:      {},
}

func (ss *savedItemService) principal(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	return rd.UserID, nil
}

func (ss *savedItemService) List(ctx context.Context, itemType string) ([]*types.UserSavedItem, error) {
	userID, err := ss.principal(ctx)
	if err != nil {
		return nil, err
	}
	if itemType != "" {
		if _, ok := validItemTypes[itemType]; !ok {
			return nil, apperr.Invalid("unknown item_type %q", itemType)
		}
	}
	out, err := ss.savedRepo.ListByUser(dbctx.Context{Ctx: ctx}, userID, itemType)
	if err != nil {
		return nil, fmt.Errorf("error listing saved items: %w", err)
	}
	return out, nil
}

func (ss *savedItemService) Save(ctx context.Context, itemType string, itemID uuid.UUID, notes string) (*types.UserSavedItem, error) {
	userID, err := ss.principal(ctx)
	if err != nil {
		return nil, err
	}
	itemType = strings.TrimSpace(itemType)
	if _, ok := validItemTypes[itemType]; !ok {
		return nil, apperr.Invalid("unknown item_type %q", itemType)
	}
	if itemID == uuid.Nil {
		return nil, apperr.Invalid("item_id is required")
	}

	// The bookmark target must be a visible catalog row.
	dbc := dbctx.Context{Ctx: ctx}
	switch itemType {
	case types.SavedItemCollege:
		_, err = ss.collegeRepo.GetByID(dbc, itemID)
	case types.SavedItemScholarship:
		_, err = ss.scholarshipRepo.GetActiveByID(dbc, itemID)
	case types.SavedItemCareer:
		_, err = ss.careerPathRepo.GetByID(dbc, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("error resolving %s %s: %w", itemType, itemID, apperr.FromDB(err))
	}

	item := &types.UserSavedItem{
		ID:       uuid.New(),
		UserID:   userID,
		ItemType: itemType,
		ItemID:   itemID,
		Notes:    strings.TrimSpace(notes),
	}
	if _, err := ss.savedRepo.Create(dbc, []*types.UserSavedItem{item}); err != nil {
		return nil, fmt.Errorf("error saving item: %w", apperr.FromDB(err))
	}
	return item, nil
}

func (ss *savedItemService) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := ss.principal(ctx)
	if err != nil {
		return err
	}
	if err := ss.savedRepo.DeleteOwned(dbctx.Context{Ctx: ctx}, id, userID); err != nil {
		return fmt.Errorf("error deleting saved item: %w", apperr.FromDB(err))
	}
	return nil
}
