package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	"github.com/disha-labs/disha-backend/internal/data/repos/testutil"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
)

const sampleCatalog = `
colleges:
  - name: Indian Institute of Science
    type: government
    location: Bengaluru
    state: KA
    fees_per_year: 35000
    ranking: 1
    admission_criteria: GATE / JEE Advanced
    contact_info:
      email: admissions@iisc.example
scholarships:
  - title: National Merit Scholarship
    description: Merit scholarship for class 12 toppers
    amount: 50000
    eligibility_criteria: Above 90 percent in boards
    deadline: "2026-10-31"
    category: merit
  - title: Closed Pilot Scholarship
    description: Legacy scheme
    is_active: false
career_paths:
  - title: Software Engineer
    description: Builds software systems
    required_education: B.Tech / B.E.
    average_salary: 900000
    job_outlook: growing
    skills_required: [programming, problem solving]
    related_courses: [computer science]
`

func TestParseCatalog(t *testing.T) {
	cat, err := ParseCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cat.Colleges) != 1 || len(cat.Scholarships) != 2 || len(cat.CareerPaths) != 1 {
		t.Fatalf("unexpected counts: %d/%d/%d", len(cat.Colleges), len(cat.Scholarships), len(cat.CareerPaths))
	}
	if cat.Colleges[0].ContactInfo["email"] != "admissions@iisc.example" {
		t.Fatalf("contact info not parsed: %+v", cat.Colleges[0].ContactInfo)
	}
	if cat.Scholarships[0].IsActive != nil {
		t.Fatalf("expected omitted is_active to stay nil")
	}
	if cat.Scholarships[1].IsActive == nil || *cat.Scholarships[1].IsActive {
		t.Fatalf("expected explicit is_active=false to survive")
	}
}

func TestParseCatalog_Rejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"college without name", "colleges:\n  - state: KA\n", "name is required"},
		{"scholarship without title", "scholarships:\n  - description: x\n", "title is required"},
		{"bad deadline", "scholarships:\n  - title: T\n    deadline: 31-10-2026\n", "bad deadline"},
		{"career path without title", "career_paths:\n  - description: x\n", "title is required"},
		{"not yaml", "colleges: [", "parse seed file"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSeeder_ApplyIsIdempotent(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	cat, err := ParseCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	collegeRepo := repos.NewCollegeRepo(tx, log)
	scholarshipRepo := repos.NewScholarshipRepo(tx, log)
	careerPathRepo := repos.NewCareerPathRepo(tx, log)
	seeder := NewSeeder(tx, log, collegeRepo, scholarshipRepo, careerPathRepo)

	if err := seeder.Apply(dbc, cat); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	first, err := collegeRepo.GetByNames(dbc, []string{"Indian Institute of Science"})
	if err != nil || len(first) != 1 {
		t.Fatalf("expected seeded college, got %v / %v", first, err)
	}

	// A second run updates in place and keeps ids stable.
	cat.Colleges[0].Ranking = 2
	if err := seeder.Apply(dbc, cat); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	second, err := collegeRepo.GetByNames(dbc, []string{"Indian Institute of Science"})
	if err != nil || len(second) != 1 {
		t.Fatalf("expected single college after reseed, got %v / %v", second, err)
	}
	if second[0].ID != first[0].ID {
		t.Fatalf("reseed changed the college id")
	}
	if second[0].Ranking != 2 {
		t.Fatalf("expected ranking updated to 2, got %d", second[0].Ranking)
	}

	// Scholarships default to active unless the file says otherwise.
	rows, err := scholarshipRepo.GetByTitles(dbc, []string{"National Merit Scholarship", "Closed Pilot Scholarship"})
	if err != nil {
		t.Fatalf("get scholarships: %v", err)
	}
	byTitle := map[string]bool{}
	for _, r := range rows {
		byTitle[r.Title] = r.IsActive
	}
	if !byTitle["National Merit Scholarship"] {
		t.Fatalf("expected default-active scholarship")
	}
	if byTitle["Closed Pilot Scholarship"] {
		t.Fatalf("expected explicit inactive scholarship to stay inactive")
	}

	careers, err := careerPathRepo.GetByTitles(dbc, []string{"Software Engineer"})
	if err != nil || len(careers) != 1 {
		t.Fatalf("expected seeded career path, got %v / %v", careers, err)
	}
}
