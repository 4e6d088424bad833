package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/ctxutil"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

// ProgressUpdate is a partial quest update; nil fields keep their value.
type ProgressUpdate struct {
	Status   *string
	Points   *int
	Metadata json.RawMessage
}

type ProgressService interface {
	List(ctx context.Context) ([]*types.UserProgress, error)
	Summary(ctx context.Context) (*repos.ProgressSummary, error)
	// Upsert creates or updates the single progress row for a quest type.
	// Entering the completed status stamps completed_at; leaving it clears
	// the stamp.
	Upsert(ctx context.Context, questType string, upd ProgressUpdate) (*types.UserProgress, error)
}

type progressService struct {
	db           *gorm.DB
	log          *logger.Logger
	progressRepo repos.UserProgressRepo
}

func NewProgressService(db *gorm.DB, log *logger.Logger, progressRepo repos.UserProgressRepo) ProgressService {
	return &progressService{db: db, log: log.With("service", "ProgressService"), progressRepo: progressRepo}
}

var validQuestStatuses = map[string]struct{}{
	types.QuestStatusPending:    {},
	types.QuestStatusInProgress: {},
	types.QuestStatusCompleted:  {},
}

func (ps *progressService) principal(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	return rd.UserID, nil
}

func (ps *progressService) List(ctx context.Context) ([]*types.UserProgress, error) {
	userID, err := ps.principal(ctx)
	if err != nil {
		return nil, err
	}
	out, err := ps.progressRepo.ListByUser(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing progress: %w", err)
	}
	return out, nil
}

func (ps *progressService) Summary(ctx context.Context) (*repos.ProgressSummary, error) {
	userID, err := ps.principal(ctx)
	if err != nil {
		return nil, err
	}
	s, err := ps.progressRepo.SummarizeByUser(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, fmt.Errorf("error summarizing progress: %w", err)
	}
	return s, nil
}

func (ps *progressService) Upsert(ctx context.Context, questType string, upd ProgressUpdate) (*types.UserProgress, error) {
	userID, err := ps.principal(ctx)
	if err != nil {
		return nil, err
	}
	questType = strings.TrimSpace(questType)
	if questType == "" {
		return nil, apperr.Invalid("quest_type is required")
	}
	if upd.Status != nil {
		if _, ok := validQuestStatuses[*upd.Status]; !ok {
			return nil, apperr.Invalid("unknown status %q", *upd.Status)
		}
	}
	if upd.Points != nil && *upd.Points < 0 {
		return nil, apperr.Invalid("points cannot be negative")
	}

	var row *types.UserProgress
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := ps.progressRepo.GetByUserAndQuest(dbc, userID, questType)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("error fetching progress: %w", err)
		}

		if existing == nil {
			row = &types.UserProgress{
				ID:        uuid.New(),
				UserID:    userID,
				QuestType: questType,
				Status:    types.QuestStatusPending,
				Metadata:  datatypes.JSON([]byte("{}")),
			}
			if upd.Status != nil {
				row.Status = *upd.Status
			}
			if upd.Points != nil {
				row.Points = *upd.Points
			}
			if upd.Metadata != nil {
				row.Metadata = datatypes.JSON(upd.Metadata)
			}
			if row.Status == types.QuestStatusCompleted {
				now := time.Now().UTC()
				row.CompletedAt = &now
			}
			if _, err := ps.progressRepo.Create(dbc, []*types.UserProgress{row}); err != nil {
				return fmt.Errorf("error creating progress: %w", apperr.FromDB(err))
			}
			return nil
		}

		updates := map[string]interface{}{}
		if upd.Status != nil && *upd.Status != existing.Status {
			updates["status"] = *upd.Status
			if *upd.Status == types.QuestStatusCompleted {
				updates["completed_at"] = time.Now().UTC()
			} else {
				updates["completed_at"] = nil
			}
		}
		if upd.Points != nil {
			updates["points"] = *upd.Points
		}
		if upd.Metadata != nil {
			updates["metadata"] = []byte(upd.Metadata)
		}
		if len(updates) > 0 {
			if err := ps.progressRepo.UpdateFields(dbc, existing.ID, userID, updates); err != nil {
				return fmt.Errorf("error updating progress: %w", apperr.FromDB(err))
			}
		}
		reloaded, err := ps.progressRepo.GetByUserAndQuest(dbc, userID, questType)
		if err != nil {
			return fmt.Errorf("error reloading progress: %w", err)
		}
		row = reloaded
		return nil
	}); err != nil {
		return nil, err
	}
	return row, nil
}
