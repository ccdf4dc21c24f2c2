// Command migrate manages the database schema outside of server startup.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/news-forum-api/internal/config"
	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// migrator is the subset of database.DB the commands drive
type migrator interface {
	RunMigrations(path string) error
	MigrateDown(path string) error
	MigrateToVersion(path string, version uint) error
	MigrationVersion(path string) (uint, bool, error)
	Close() error
}

// connectFunc opens the store for a command run
type connectFunc func(cfg *config.DatabaseConfig, log zerolog.Logger) (migrator, error)

func connect(cfg *config.DatabaseConfig, log zerolog.Logger) (migrator, error) {
	db, err := database.New(cfg, log)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	if err := newRootCmd(connect).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(open connectFunc) *cobra.Command {
	var path string

	root := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the news forum database schema",
		Long: `migrate applies and rolls back the SQL migrations for the news forum API.

Connection settings come from the same environment variables (and .env file)
as the server.

Example usage:
  migrate up                 # Apply all pending migrations
  migrate down               # Roll back the last migration
  migrate goto 1             # Migrate to version 1
  migrate version            # Print the applied version`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&path, "path", "p", "", "migrations directory (default: MIGRATIONS_PATH)")

	// withDB loads config, opens the store and hands both to fn
	withDB := func(cmd *cobra.Command, fn func(m migrator, dir string) error) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dir := cfg.Database.MigrationsPath
		if path != "" {
			dir = path
		}

		log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		m, err := open(&cfg.Database, log)
		if err != nil {
			return err
		}
		defer m.Close()
		return fn(m, dir)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd, func(m migrator, dir string) error {
					return m.RunMigrations(dir)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd, func(m migrator, dir string) error {
					return m.MigrateDown(dir)
				})
			},
		},
		&cobra.Command{
			Use:   "goto VERSION",
			Short: "Migrate up or down to a specific version",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return withDB(cmd, func(m migrator, dir string) error {
					return m.MigrateToVersion(dir, uint(version))
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd, func(m migrator, dir string) error {
					version, dirty, err := m.MigrationVersion(dir)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
					return nil
				})
			},
		},
	)

	return root
}
