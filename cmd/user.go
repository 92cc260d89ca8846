package main

import (
	"errors"

	"boardapi/internal/app/user"
	"boardapi/internal/auth"

	"github.com/spf13/cobra"
)

var userPassword string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add <id> <email>",
	Short: "Register an account with the same rules as the API",
	Args:  cobra.ExactArgs(2),
	RunE:  runUserAdd,
}

func init() {
	userAddCmd.Flags().StringVarP(&userPassword, "password", "p", "", "account password")
	_ = userAddCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	repo := user.NewRepository(env.db, auth.NewBcryptHasher(env.cfg.BcryptCost))
	res := user.NewService(repo, env.logger).Register(cmd.Context(), args[0], userPassword, args[1])
	if !res.OK() {
		return errors.New(res.Msg())
	}
	cmd.Printf("user %s: %s\n", args[0], res.Msg())
	return nil
}
