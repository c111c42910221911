// cmd/ecomctl/cmd_db.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/config"
	"github.com/javajoker/ecom-backend/internal/database"
	"github.com/javajoker/ecom-backend/internal/logging"
	"github.com/javajoker/ecom-backend/internal/services"
)

// bootDB loads config and opens the database connection.
func bootDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Configure(logrus.StandardLogger(), cfg.Log, false, os.Stderr); err != nil {
		return nil, nil, err
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

// ecomctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		return database.RunMigrations(db)
	},
}

// ecomctl stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		svc := services.NewDashboardService(db, services.Options{
			QueryTimeout: cfg.Database.QueryTimeoutDuration(),
		})
		stats, err := svc.GetDashboardStats(context.Background())
		if err != nil {
			return fmt.Errorf("dashboard stats: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	},
}
