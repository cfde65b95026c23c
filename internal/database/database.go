// Package database opens the postgres store used by the gorm repositories
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config configures the connection
type Config struct {
	DSN string
	// Verbose logs every statement
	Verbose bool
}

// Open connects to postgres and migrates the schema
func Open(cfg *Config) (*gorm.DB, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	logLevel := logger.Silent
	if cfg.Verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the tables
func Migrate(db *gorm.DB) error {
	for _, table := range []interface{}{
		&Trainer{}, &Pokemon{},
	} {
		if e := db.AutoMigrate(table); e != nil {
			return fmt.Errorf("automigrate %T failed: %w", table, e)
		}
	}
	return nil
}
