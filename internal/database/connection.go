// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/ecom-backend/internal/config"
	"github.com/javajoker/ecom-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := buildDialector(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established successfully")
	return db, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q (supported: mysql, postgres, sqlite)", driver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

// RunMigrations creates the read schema. The service never writes business
// rows; migrations exist for local development, tests and fresh installs.
func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(pendingModels(db)...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

// pendingModels returns the models AutoMigrate should touch. The sqlite
// migrator cannot re-parse its own DDL for decimal(p,s) columns, so on sqlite
// only tables that do not exist yet are migrated.
func pendingModels(db *gorm.DB) []interface{} {
	all := models.AllModels()
	if db.Dialector.Name() != "sqlite" {
		return all
	}

	migrator := db.Migrator()
	pending := make([]interface{}, 0, len(all))
	for _, m := range all {
		if !migrator.HasTable(m) {
			pending = append(pending, m)
		}
	}
	return pending
}

type index struct {
	name    string
	table   string
	columns string
}

func createIndexes(db *gorm.DB) error {
	indexes := []index{
		// Product listing: active filter plus default ordering
		{"idx_products_active_created", "products", "is_active, created_at"},
		{"idx_products_active_featured", "products", "is_active, is_featured"},

		// Derived aggregates
		{"idx_variants_product_active", "product_variants", "product_id, is_active"},
		{"idx_images_product_sort", "product_images", "product_id, sort_order"},

		// Order listing and dashboard
		{"idx_orders_customer_created", "orders", "customer_id, created_at"},
		{"idx_orders_status_payment", "orders", "status, payment_status"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX %s ON %s(%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			logrus.WithError(err).WithField("index", idx.name).Warn("Failed to create index")
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}
