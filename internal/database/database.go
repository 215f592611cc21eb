// Package database opens the Postgres pool and owns the schema.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and startup migration. Zero values fall back to defaults.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

func (o *Options) withDefaults() Options {
	out := Options{
		LogLevel:        logger.Error,
		MaxOpenConns:    20,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
	if o == nil {
		return out
	}
	out.SkipMigrate = o.SkipMigrate
	if o.LogLevel != 0 {
		out.LogLevel = o.LogLevel
	}
	if o.MaxOpenConns != 0 {
		out.MaxOpenConns = o.MaxOpenConns
	}
	if o.MaxIdleConns != 0 {
		out.MaxIdleConns = o.MaxIdleConns
	}
	if o.ConnMaxLifetime != 0 {
		out.ConnMaxLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime != 0 {
		out.ConnMaxIdleTime = o.ConnMaxIdleTime
	}
	return out
}

// Initialize connects through the pgx stdlib driver, verifies the server
// answers, then migrates the schema unless SkipMigrate is set.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := opts.withDefaults()

	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	sqlDB := stdlib.OpenDB(*connCfg)
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// gen_random_uuid() backs every primary key
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if o.SkipMigrate {
		err = setupJoinTables(db)
	} else {
		err = Migrate(db)
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Models returns every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Department{},
		&models.Supervisor{},
		&models.Student{},
		&models.AllocationResult{},
		&models.Group{},
		&models.GroupStudent{},
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := setupJoinTables(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// group_students carries its own created_at, so gorm must know the join model
func setupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Group{}, "Students", &models.GroupStudent{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	return nil
}
