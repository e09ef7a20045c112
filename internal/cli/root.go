// Package cli implements pizzeriactl, the administration tool of the pizzeria API.
package cli

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizzeria-api/internal/config"
	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	sqlitePath string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "pizzeriactl",
		Short:         "Administer the pizzeria API",
		Long:          "pizzeriactl registers API clients, seeds the menu and maintains the token store of the pizzeria API database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "", "Use this SQLite file instead of the configured database")

	cmd.AddCommand(newCreateClientCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newPurgeTokensCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// openDatabase connects to the configured database, or to the --sqlite file, and migrates it
func (o *globalOptions) openDatabase(ctx context.Context) (*gorm.DB, error) {
	var dbConfig database.DatabaseConfig
	if o.sqlitePath != "" {
		dbConfig = database.DatabaseConfig{Driver: "sqlite", Path: o.sqlitePath}
	} else {
		conf, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		dbConfig = conf.Database()
	}

	db, err := database.Connect(ctx, dbConfig, database.DefaultRetry)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		closeDatabase(db)
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
