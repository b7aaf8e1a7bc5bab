package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCommand() *cobra.Command {
	var dataDir string
	var username string
	var pw string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and open an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(dataDir, username, pw, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "station data directory")
	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&pw, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runLogin(dataDir, username, pw string, in io.Reader, out io.Writer) error {
	st, err := loadStation(dataDir)
	if err != nil {
		return err
	}

	if err := st.ctrl.LogIn(username, pw); err != nil {
		return errors.New(errorMessage(err))
	}

	fmt.Fprintf(out, "Welcome to %s, %s\n", st.cfg.Bank.Name, username)
	runShell(st, in, out)
	return nil
}

const shellHelp = `Commands:
  deposit <amount>              credit your account (1 to 2,999.99 per deposit)
  withdraw <amount>             debit your account
  transfer <amount> <username>  send money to another account
  balance                       show your balance
  logout                        end the session`

// runShell reads one operation per line until logout or end of input. It is
// the stand-in for the home screen: it only parses words, calls the
// controller and prints the outcome.
func runShell(st *station, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			st.ctrl.LogOut()
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd := fields[0]; {
		case cmd == "deposit" && len(fields) == 2:
			balance, err := st.ctrl.Deposit(fields[1])
			if err != nil {
				fmt.Fprintln(out, errorMessage(err))
				continue
			}
			st.snapshot("bank: deposit by " + st.ctrl.Username())
			fmt.Fprintf(out, "Deposited $%s. New balance is $%s\n", fields[1], balance.StringFixed(2))

		case cmd == "withdraw" && len(fields) == 2:
			balance, err := st.ctrl.Withdraw(fields[1])
			if err != nil {
				fmt.Fprintln(out, errorMessage(err))
				continue
			}
			st.snapshot("bank: withdrawal by " + st.ctrl.Username())
			fmt.Fprintf(out, "Withdrew $%s. New balance is $%s\n", fields[1], balance.StringFixed(2))

		case cmd == "transfer" && len(fields) == 3:
			if err := st.ctrl.Transfer(fields[1], fields[2]); err != nil {
				fmt.Fprintln(out, errorMessage(err))
				continue
			}
			st.snapshot("bank: transfer from " + st.ctrl.Username())
			fmt.Fprintf(out, "Transferred $%s to %s.\n", fields[1], fields[2])

		case cmd == "balance" && len(fields) == 1:
			balance, err := st.ctrl.CheckBalance()
			if err != nil {
				fmt.Fprintln(out, errorMessage(err))
				continue
			}
			fmt.Fprintf(out, "Your bank balance is: $%s\n", balance.StringFixed(2))

		case cmd == "logout" || cmd == "quit" || cmd == "exit":
			st.ctrl.LogOut()
			fmt.Fprintln(out, "You have been logged out successfully")
			return

		case cmd == "help":
			fmt.Fprintln(out, shellHelp)

		default:
			fmt.Fprintf(out, "Unknown command %q (try help)\n", scanner.Text())
		}
	}
}
