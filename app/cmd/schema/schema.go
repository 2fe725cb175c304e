package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ribgsilva/notes-service/persistence/v1/schema"
	"github.com/ribgsilva/notes-service/platform/env"
	"github.com/ribgsilva/notes-service/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

// Command groups the schema subcommands. Both connect to the store named by
// DATABASE_CONNECTION_URL before running.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes and users tables",
	}
	cmd.AddCommand(
		action("create", "Creates the schema", "created schema", schema.Create),
		action("delete", "Deletes the schema", "deleted schema", schema.Drop),
	)
	return cmd
}

func action(use, short, done string, apply func(ctx context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// empty logger
			log := zap.NewNop().Sugar()
			if err := initVars(log); err != nil {
				return err
			}
			defer func() {
				if err := sys.R.Database.Close(); err != nil {
					log.Errorf("could not close db conn gracefully: %s", err)
				}
			}()

			if err := apply(cmd.Context()); err != nil {
				return fmt.Errorf("%s schema: %w", use, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		},
	}
}

func initVars(log *zap.SugaredLogger) error {
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/notes")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	// mysql
	var db *sql.DB
	if err := func() error {
		mysqlDb, err := sql.Open("mysql", sys.Configs.Database.ConnectionURL)
		if err != nil {
			return fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := mysqlDb.PingContext(dbCtx); err != nil {
			_ = mysqlDb.Close()
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = mysqlDb
		return nil
	}(); err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
