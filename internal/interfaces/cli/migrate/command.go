package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mado-app/mado/internal/infrastructure/config"
	"github.com/mado-app/mado/internal/infrastructure/database"
	"github.com/mado-app/mado/internal/infrastructure/migration"
	"github.com/mado-app/mado/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Bring the database schema up to date for all persisted models.`,
		RunE:  runMigrate,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	db, err := database.NewConnection(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	if err := migration.NewManager(db, log).Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed", "environment", env)
	return nil
}
