package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConversionRun is one CLI invocation's durable record, keyed by the
// source header's hash so a re-run against an unchanged header and
// template can short-circuit to the cached metadata JSON (spec §10.5).
type ConversionRun struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	SourceHash   string `gorm:"type:varchar(64);uniqueIndex"`
	TemplateHash string `gorm:"type:varchar(64)"`

	DurationMS int64 `gorm:"column:duration_ms"`
	Success    bool  `gorm:"default:false"`

	MetadataJSON datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Store wraps the gorm/sqlite connection the durable cache runs on.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn (creating its parent
// directory if needed, mirroring db.Connect) and runs the migration for
// ConversionRun.
func Open(dsn string, debug bool) (*Store, error) {
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	gcfg := &gorm.Config{}
	if debug {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect to cache db: %w", err)
	}
	if err := db.AutoMigrate(&ConversionRun{}); err != nil {
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}
	return &Store{db: db}, nil
}

// Lookup returns the most recent successful run recorded for sourceHash
// and templateHash, if one exists.
func (s *Store) Lookup(sourceHash, templateHash string) (*ConversionRun, bool, error) {
	var run ConversionRun
	err := s.db.Where("source_hash = ? AND template_hash = ? AND success = ?", sourceHash, templateHash, true).
		Order("created_at desc").
		First(&run).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &run, true, nil
}

// Record upserts the run for sourceHash, replacing any prior row (a
// source hash is effectively the cache key; only the latest run for it
// matters).
func (s *Store) Record(run *ConversionRun) error {
	return s.db.Where("source_hash = ?", run.SourceHash).
		Assign(*run).
		FirstOrCreate(&ConversionRun{}).Error
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
