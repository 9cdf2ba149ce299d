package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studyforge/internal/plan"
)

// planRecord is one stored plan: the full JSON document plus its position in
// the collection.
type planRecord struct {
	ID       string `gorm:"primaryKey"`
	Position int    `gorm:"not null"`
	Data     []byte `gorm:"not null"`
}

func (planRecord) TableName() string { return "plans" }

// SQLiteAdapter persists the collection in a SQLite database. Each save
// rewrites the whole table in one transaction, keeping the
// whole-collection-overwrite semantics of the file adapter.
type SQLiteAdapter struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the database at the given path and
// runs migrations.
func OpenSQLite(path string) (*SQLiteAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&planRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteAdapter{db: db}, nil
}

// Load reads the collection in position order. Malformed rows degrade to an
// empty collection, matching the file adapter.
func (a *SQLiteAdapter) Load() ([]plan.Plan, error) {
	var records []planRecord
	if err := a.db.Order("position").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load plan records: %w", err)
	}

	plans := make([]plan.Plan, 0, len(records))
	for _, rec := range records {
		var p plan.Plan
		if err := json.Unmarshal(rec.Data, &p); err != nil {
			return nil, nil
		}
		plans = append(plans, p)
	}
	if len(plans) == 0 {
		return nil, nil
	}
	return plans, nil
}

// Save replaces the stored collection with the given one.
func (a *SQLiteAdapter) Save(plans []plan.Plan) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM plans").Error; err != nil {
			return fmt.Errorf("failed to clear plans: %w", err)
		}
		for i, p := range plans {
			data, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to marshal plan %s: %w", p.ID, err)
			}
			rec := planRecord{ID: p.ID, Position: i, Data: data}
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("failed to insert plan %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

// Close closes the underlying database connection.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
