package register

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
	"fnotes/internal/tui/auth"
)

func NewCmdRegister(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register",
		Aliases: []string{"r"},
		Short:   "Register a new account",
		Long: heredoc.Doc(`
			Create a new account with a name, email, and password.
			Registration logs you in immediately.
		`),
		Example: heredoc.Doc(`
			fnotes auth register
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.Config.Authenticated() {
				fmt.Println(
					"You are already authenticated. Please logout with the logout command before registering a new account.",
				)
				return nil
			}
			return auth.Register(s)
		},
	}

	return cmd
}
