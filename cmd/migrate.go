package main

import (
	"boardapi/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Run the embedded schema migrations",
	Long:      `Applies, rolls back one step of, or reports the status of the embedded migrations. Defaults to up.`,
	ValidArgs: []string{"up", "down", "status"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	direction := "up"
	if len(args) > 0 {
		direction = args[0]
	}

	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	if err := db.Migrate(cmd.Context(), env.db, env.logger, direction); err != nil {
		return err
	}
	cmd.Printf("migrate %s: done\n", direction)
	return nil
}
