package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/disha-labs/disha-backend/internal/data/db"
	"github.com/disha-labs/disha-backend/internal/data/repos"
	"github.com/disha-labs/disha-backend/internal/pkg/dbctx"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
	"github.com/disha-labs/disha-backend/internal/seed"
)

func main() {
	path := flag.String("file", "catalog.yaml", "path to the catalog seed file")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cat, err := seed.LoadCatalog(*path)
	if err != nil {
		log.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.Migrate(); err != nil {
		log.Error("Database migration failed", "error", err)
		os.Exit(1)
	}
	gdb := dbService.DB()

	seeder := seed.NewSeeder(
		gdb,
		log,
		repos.NewCollegeRepo(gdb, log),
		repos.NewScholarshipRepo(gdb, log),
		repos.NewCareerPathRepo(gdb, log),
	)
	if err := seeder.Apply(dbctx.Context{Ctx: context.Background()}, cat); err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("Catalog seeded",
		"colleges", len(cat.Colleges),
		"scholarships", len(cat.Scholarships),
		"career_paths", len(cat.CareerPaths),
	)
}
