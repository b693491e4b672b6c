package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gastrack/internal/infrastructure/config"
	"gastrack/internal/infrastructure/database"
	"gastrack/internal/infrastructure/persistence/migrations"
	"gastrack/internal/shared/logger"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and seed data",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Migrate the schema without applying seed data")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migrations.MigrateAll(database.Get()); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	logger.Info("schema migrated")

	if !skipSeed {
		if err := migrations.SeedKnowledgeBase(database.Get(), "mysql"); err != nil {
			return fmt.Errorf("seed migration failed: %w", err)
		}
		logger.Info("seed data applied")
	}

	return nil
}
