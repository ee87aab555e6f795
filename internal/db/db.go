package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/valet-reports/internal/config"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

const maxConnectBackoff = 30 * time.Second

// Open connects to Postgres, retrying while the server refuses connections
// or is still starting up. Any other failure is returned immediately.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	policy := RetryPolicy{
		Attempts: cfg.DBConnectAttempts,
		Base:     cfg.DBConnectBackoff,
		Max:      maxConnectBackoff,
	}

	var conn *gorm.DB
	err := policy.Do(ctx, logger, func() error {
		db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
			PrepareStmt: true,
		})
		if err != nil {
			return err
		}
		conn = db
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return conn, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.ShiftReport{},
		&models.ShiftScreenshot{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
