package main

import (
	"boardapi/internal/db/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the welcome boards into an empty database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := openEnvironment()
		if err != nil {
			return err
		}
		defer env.close()

		if err := seeder.NewSeeder(env.db, env.logger).Seed(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("seed: done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
