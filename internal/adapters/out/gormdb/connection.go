package gormdb

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"atelier/internal/adapters/out/gormdb/catalogrepo"
	"atelier/internal/adapters/out/gormdb/clientrepo"
	"atelier/internal/adapters/out/gormdb/notificationrepo"
	"atelier/internal/adapters/out/gormdb/orderrepo"
	"atelier/internal/adapters/out/gormdb/workstationrepo"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN is a process-local SQLite database that disappears on exit.
const DefaultDSN = "file:atelier?mode=memory"

// SlowQueryThreshold is the duration above which a statement is logged.
const SlowQueryThreshold = 200 * time.Millisecond

// Open is OpenWithLogger with slog.Default().
func Open(dsn string) (*gorm.DB, error) {
	return OpenWithLogger(dsn, slog.Default())
}

// OpenWithLogger connects to PostgreSQL when dsn is a postgres URL or keyword
// string and to SQLite otherwise.
//
// Duplicate keys are translated to gorm.ErrDuplicatedKey for both drivers,
// which the repositories rely on.
//
// GORM reports failed and slow statements through log with a "component"
// attribute. Lookups that find nothing are expected (seeding, missing catalog
// models) and are not logged.
func OpenWithLogger(dsn string, log *slog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	cfg := &gorm.Config{
		Logger:         newGormLogger(log),
		TranslateError: true,
	}

	if isPostgres(dsn) {
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A memory database lives as long as its connection, and SQLite allows a
	// single writer anyway.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

func newGormLogger(log *slog.Logger) logger.Interface {
	return logger.New(slogWriter{log: log.With("component", "gorm")}, logger.Config{
		SlowThreshold:             SlowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// slogWriter adapts slog to GORM's printf-style logger.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Warn("Database", "message", fmt.Sprintf(format, args...))
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&workstationrepo.WorkstationDTO{},
		&notificationrepo.NotificationDTO{},
		&clientrepo.ClientDTO{},
		&catalogrepo.ModelDTO{},
	)
}
