package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSignupCommand() *cobra.Command {
	var dataDir string
	var username string
	var pw string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Open a new checking account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(dataDir, username, pw)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "station data directory")
	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&pw, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runSignup(dataDir, username, pw string) error {
	st, err := loadStation(dataDir)
	if err != nil {
		return err
	}

	if err := st.ctrl.SignUp(username, pw); err != nil {
		return errors.New(errorMessage(err))
	}

	st.snapshot("bank: signup " + username)
	fmt.Printf("Welcome to %s, %s. You can log in.\n", st.cfg.Bank.Name, username)
	return nil
}
