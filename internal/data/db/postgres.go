package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/disha-labs/disha-backend/internal/pkg/envutil"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewService opens the database. Postgres is the normal target; setting
// DB_DRIVER=sqlite points the server at a local file for development.
func NewService(logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "DBService")

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	}

	driver := envutil.GetEnv("DB_DRIVER", "postgres", logg)
	var (
		gdb *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		path := envutil.GetEnv("SQLITE_PATH", "disha.db", logg)
		gdb, err = gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), cfg)
	default:
		pgHost := envutil.GetEnv("POSTGRES_HOST", "localhost", logg)
		pgPort := envutil.GetEnv("POSTGRES_PORT", "5432", logg)
		pgUser := envutil.GetEnv("POSTGRES_USER", "postgres", logg)
		pgPassword := envutil.GetEnv("POSTGRES_PASSWORD", "", logg)
		pgName := envutil.GetEnv("POSTGRES_NAME", "disha", logg)
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgName,
		)
		gdb, err = gorm.Open(postgres.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database (%s): %w", driver, err)
	}

	return &Service{db: gdb, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}

func (s *Service) Migrate() error {
	s.log.Info("Running automigration...")
	return AutoMigrateAll(s.db)
}
