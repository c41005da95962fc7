package db

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quillarchive/quillarchive/internal/models"
)

// Connect opens the database named by dsn (sqlite path or postgres DSN),
// retrying briefly so the server survives a database that is still starting.
// The DSN is normalized first so quoting or padding from the environment
// never misroutes a sqlite path to the postgres driver.
func Connect(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("empty DATABASE_DSN; check environment configuration")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		if IsSQLite(dsn) {
			conn, err = gorm.Open(sqlite.Open(dsn), cfg)
		} else {
			conn, err = gorm.Open(postgres.Open(dsn), cfg)
		}
		if err == nil {
			return conn, nil
		}
		time.Sleep(time.Duration(i+1) * 500 * time.Millisecond)
	}
	return nil, fmt.Errorf("connect database: %w", err)
}

// ConnectAndMigrate opens the database and applies the schema.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	conn, err := Connect(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate applies the schema and seeds baseline rows.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Preference{},
		&models.Role{},
		&models.Permission{},
		&models.Work{},
		&models.Collection{},
		&models.Skin{},
		&models.Question{},
		&models.Tag{},
		&models.AdminSetting{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if err := SeedPermissions(conn); err != nil {
		return fmt.Errorf("seed permissions: %w", err)
	}
	return ensureAdminSetting(conn)
}

// ensureAdminSetting guarantees the single settings row exists.
func ensureAdminSetting(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.AdminSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return conn.Create(&models.AdminSetting{}).Error
}
