package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cafepos/pkg/session"
)

// hash: bcrypt a password read from stdin, for use in CAFE_CASHIERS.
func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <cashier>",
		Short: "Hash a cashier password read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return fmt.Errorf("empty password")
			}
			h, err := session.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", args[0], h)
			return nil
		},
	}
}
