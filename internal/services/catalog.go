package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/apperr"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

// CatalogService is the read-only surface over the reference tables. The
// auth middleware has already run by the time these are reachable, so any
// authenticated principal may read them.
type CatalogService interface {
	ListColleges(ctx context.Context, f repos.CollegeFilter) ([]*types.College, error)
	GetCollege(ctx context.Context, id uuid.UUID) (*types.College, error)
	ListScholarships(ctx context.Context, f repos.ScholarshipFilter) ([]*types.Scholarship, error)
	GetScholarship(ctx context.Context, id uuid.UUID) (*types.Scholarship, error)
	ListCareerPaths(ctx context.Context, f repos.CareerPathFilter) ([]*types.CareerPath, error)
	GetCareerPath(ctx context.Context, id uuid.UUID) (*types.CareerPath, error)
}

type catalogService struct {
	db              *gorm.DB
	log             *logger.Logger
	collegeRepo     repos.CollegeRepo
	scholarshipRepo repos.ScholarshipRepo
	careerPathRepo  repos.CareerPathRepo
}

func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	collegeRepo repos.CollegeRepo,
	scholarshipRepo repos.ScholarshipRepo,
	careerPathRepo repos.CareerPathRepo,
) CatalogService {
	return &catalogService{
		db:              db,
		log:             log.With("service", "CatalogService"),
		collegeRepo:     collegeRepo,
		scholarshipRepo: scholarshipRepo,
		careerPathRepo:  careerPathRepo,
	}
}

func (cs *catalogService) ListColleges(ctx context.Context, f repos.CollegeFilter) ([]*types.College, error) {
	out, err := cs.collegeRepo.List(dbctx.Context{Ctx: ctx}, f)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}
	return out, nil
}

func (cs *catalogService) GetCollege(ctx context.Context, id uuid.UUID) (*types.College, error) {
	out, err := cs.collegeRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching college: %w", apperr.FromDB(err))
	}
	return out, nil
}

func (cs *catalogService) ListScholarships(ctx context.Context, f repos.ScholarshipFilter) ([]*types.Scholarship, error) {
	out, err := cs.scholarshipRepo.ListActive(dbctx.Context{Ctx: ctx}, f)
	if err != nil {
		return nil, fmt.Errorf("error listing scholarships: %w", err)
	}
	return out, nil
}

// GetScholarship reports an inactive scholarship the same way as a missing
// one; inactive rows are invisible to the application tier.
func (cs *catalogService) GetScholarship(ctx context.Context, id uuid.UUID) (*types.Scholarship, error) {
	out, err := cs.scholarshipRepo.GetActiveByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching scholarship: %w", apperr.FromDB(err))
	}
	return out, nil
}

func (cs *catalogService) ListCareerPaths(ctx context.Context, f repos.CareerPathFilter) ([]*types.CareerPath, error) {
	out, err := cs.careerPathRepo.List(dbctx.Context{Ctx: ctx}, f)
	if err != nil {
		return nil, fmt.Errorf("error listing career paths: %w", err)
	}
	return out, nil
}

func (cs *catalogService) GetCareerPath(ctx context.Context, id uuid.UUID) (*types.CareerPath, error) {
	out, err := cs.careerPathRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching career path: %w", apperr.FromDB(err))
	}
	return out, nil
}
