package main

import (
	"fmt"
	"os"

	"github.com/2beens/motivly/internal/config"
	"github.com/2beens/motivly/internal/db"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagReset bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create every table the service needs",
	Long: `Create every table the service needs. Running it again is harmless.
With --reset all tables are dropped first, which deletes every row.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagEnv, flagConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ctx := cmd.Context()
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: os.Getenv("MOTIVLY_DB_PASS"),
		})
		if err != nil {
			return fmt.Errorf("new db pool: %w", err)
		}
		defer pool.Close()

		if flagReset {
			log.Warnf("dropping %d tables in %s", len(db.Tables), cfg.PostgresDBName)
			if err := db.DropAll(ctx, pool); err != nil {
				return err
			}
		}
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "migrated %d tables\n", len(db.Tables))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&flagReset, "reset", false, "drop all tables before migrating")
}
