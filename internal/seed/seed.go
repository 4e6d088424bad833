package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	types "github.com/disha-labs/disha-backend/internal/domain"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

// Catalog is the on-disk shape of a seed file. Colleges are keyed by name,
// scholarships and career paths by title; re-running the seeder updates
// existing rows in place instead of duplicating them.
type Catalog struct {
	Colleges     []CollegeEntry     `yaml:"colleges"`
	Scholarships []ScholarshipEntry `yaml:"scholarships"`
	CareerPaths  []CareerPathEntry  `yaml:"career_paths"`
}

type CollegeEntry struct {
	Name              string            `yaml:"name"`
	Type              string            `yaml:"type"`
	Location          string            `yaml:"location"`
	State             string            `yaml:"state"`
	FeesPerYear       int64             `yaml:"fees_per_year"`
	Ranking           int               `yaml:"ranking"`
	AdmissionCriteria string            `yaml:"admission_criteria"`
	ContactInfo       map[string]string `yaml:"contact_info"`
}

type ScholarshipEntry struct {
	Title               string `yaml:"title"`
	Description         string `yaml:"description"`
	Amount              int64  `yaml:"amount"`
	EligibilityCriteria string `yaml:"eligibility_criteria"`
	Deadline            string `yaml:"deadline"`
	ApplicationLink     string `yaml:"application_link"`
	Category            string `yaml:"category"`
	// Defaults to true when omitted so a plain seed file publishes rows.
	IsActive *bool `yaml:"is_active"`
}

type CareerPathEntry struct {
	Title             string   `yaml:"title"`
	Description       string   `yaml:"description"`
	RequiredEducation string   `yaml:"required_education"`
	AverageSalary     int64    `yaml:"average_salary"`
	JobOutlook        string   `yaml:"job_outlook"`
	SkillsRequired    []string `yaml:"skills_required"`
	RelatedCourses    []string `yaml:"related_courses"`
}

func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, c := range cat.Colleges {
		if c.Name == "" {
			return nil, fmt.Errorf("colleges[%d]: name is required", i)
		}
	}
	for i, s := range cat.Scholarships {
		if s.Title == "" {
			return nil, fmt.Errorf("scholarships[%d]: title is required", i)
		}
		if s.Deadline != "" {
			if _, err := time.Parse("2006-01-02", s.Deadline); err != nil {
				return nil, fmt.Errorf("scholarships[%d]: bad deadline %q: %w", i, s.Deadline, err)
			}
		}
	}
	for i, cp := range cat.CareerPaths {
		if cp.Title == "" {
			return nil, fmt.Errorf("career_paths[%d]: title is required", i)
		}
	}
	return &cat, nil
}

type Seeder struct {
	db              *gorm.DB
	log             *logger.Logger
	collegeRepo     repos.CollegeRepo
	scholarshipRepo repos.ScholarshipRepo
	careerPathRepo  repos.CareerPathRepo
}

func NewSeeder(
	db *gorm.DB,
	log *logger.Logger,
	collegeRepo repos.CollegeRepo,
	scholarshipRepo repos.ScholarshipRepo,
	careerPathRepo repos.CareerPathRepo,
) *Seeder {
	return &Seeder{
		db:              db,
		log:             log.With("component", "Seeder"),
		collegeRepo:     collegeRepo,
		scholarshipRepo: scholarshipRepo,
		careerPathRepo:  careerPathRepo,
	}
}

// Apply upserts the whole catalog in one transaction. Existing rows keep
// their ids so saved items and external references stay valid.
func (s *Seeder) Apply(dbc dbctx.Context, cat *Catalog) error {
	ctx := dbc.Ctx
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := s.applyColleges(txc, cat.Colleges); err != nil {
			return err
		}
		if err := s.applyScholarships(txc, cat.Scholarships); err != nil {
			return err
		}
		return s.applyCareerPaths(txc, cat.CareerPaths)
	})
}

func (s *Seeder) applyColleges(dbc dbctx.Context, entries []CollegeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	existing, err := s.collegeRepo.GetByNames(dbc, names)
	if err != nil {
		return err
	}
	idByName := make(map[string]uuid.UUID, len(existing))
	for _, row := range existing {
		idByName[row.Name] = row.ID
	}
	rows := make([]*types.College, 0, len(entries))
	for _, e := range entries {
		id, ok := idByName[e.Name]
		if !ok {
			id = uuid.New()
		}
		contact := datatypes.JSON("{}")
		if len(e.ContactInfo) > 0 {
			b, err := json.Marshal(e.ContactInfo)
			if err != nil {
				return fmt.Errorf("college %q: contact_info: %w", e.Name, err)
			}
			contact = datatypes.JSON(b)
		}
		rows = append(rows, &types.College{
			ID:                id,
			Name:              e.Name,
			Type:              e.Type,
			Location:          e.Location,
			State:             e.State,
			FeesPerYear:       e.FeesPerYear,
			Ranking:           e.Ranking,
			AdmissionCriteria: e.AdmissionCriteria,
			ContactInfo:       contact,
		})
	}
	if err := s.collegeRepo.Upsert(dbc, rows); err != nil {
		return err
	}
	s.log.Info("Seeded colleges", "count", len(rows))
	return nil
}

func (s *Seeder) applyScholarships(dbc dbctx.Context, entries []ScholarshipEntry) error {
	if len(entries) == 0 {
		return nil
	}
	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		titles = append(titles, e.Title)
	}
	existing, err := s.scholarshipRepo.GetByTitles(dbc, titles)
	if err != nil {
		return err
	}
	idByTitle := make(map[string]uuid.UUID, len(existing))
	for _, row := range existing {
		idByTitle[row.Title] = row.ID
	}
	rows := make([]*types.Scholarship, 0, len(entries))
	for _, e := range entries {
		id, ok := idByTitle[e.Title]
		if !ok {
			id = uuid.New()
		}
		var deadline *time.Time
		if e.Deadline != "" {
			d, err := time.Parse("2006-01-02", e.Deadline)
			if err != nil {
				return fmt.Errorf("scholarship %q: bad deadline: %w", e.Title, err)
			}
			deadline = &d
		}
		active := true
		if e.IsActive != nil {
			active = *e.IsActive
		}
		rows = append(rows, &types.Scholarship{
			ID:                  id,
			Title:               e.Title,
			Description:         e.Description,
			Amount:              e.Amount,
			EligibilityCriteria: e.EligibilityCriteria,
			Deadline:            deadline,
			ApplicationLink:     e.ApplicationLink,
			Category:            e.Category,
			IsActive:            active,
		})
	}
	if err := s.scholarshipRepo.Upsert(dbc, rows); err != nil {
		return err
	}
	s.log.Info("Seeded scholarships", "count", len(rows))
	return nil
}

func (s *Seeder) applyCareerPaths(dbc dbctx.Context, entries []CareerPathEntry) error {
	if len(entries) == 0 {
		return nil
	}
	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		titles = append(titles, e.Title)
	}
	existing, err := s.careerPathRepo.GetByTitles(dbc, titles)
	if err != nil {
		return err
	}
	idByTitle := make(map[string]uuid.UUID, len(existing))
	for _, row := range existing {
		idByTitle[row.Title] = row.ID
	}
	rows := make([]*types.CareerPath, 0, len(entries))
	for _, e := range entries {
		id, ok := idByTitle[e.Title]
		if !ok {
			id = uuid.New()
		}
		skills, err := marshalList(e.SkillsRequired)
		if err != nil {
			return fmt.Errorf("career path %q: skills_required: %w", e.Title, err)
		}
		courses, err := marshalList(e.RelatedCourses)
		if err != nil {
			return fmt.Errorf("career path %q: related_courses: %w", e.Title, err)
		}
		rows = append(rows, &types.CareerPath{
			ID:                id,
			Title:             e.Title,
			Description:       e.Description,
			RequiredEducation: e.RequiredEducation,
			AverageSalary:     e.AverageSalary,
			JobOutlook:        e.JobOutlook,
			SkillsRequired:    skills,
			RelatedCourses:    courses,
		})
	}
	if err := s.careerPathRepo.Upsert(dbc, rows); err != nil {
		return err
	}
	s.log.Info("Seeded career paths", "count", len(rows))
	return nil
}

func marshalList(vals []string) (datatypes.JSON, error) {
	if vals == nil {
		vals = []string{}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
