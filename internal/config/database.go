package config

import (
	"fmt"

	"afyajirani-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB opens the row store for the configured driver and migrates every
// collection the API reads or writes.
func ConnectDB(cfg *Config, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is empty")
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		dialector = mysql.Open(cfg.DBDSN)
	}

	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true, // unique violations come back as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if err := db.AutoMigrate(
		&models.Hospital{},
		&models.User{},
		&models.HospitalApplication{},
		&models.Case{},
		&models.Patient{},
		&models.Tip{},
		&models.Clinic{},
		&models.Helpline{},
		&models.FAQ{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}
