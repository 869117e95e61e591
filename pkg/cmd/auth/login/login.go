package login

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
	"fnotes/internal/tui/auth"
)

func NewCmdLogin(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Aliases: []string{"l"},
		Short:   "Log in to your account",
		Long: heredoc.Doc(`
			Log in to your account with your email and password.
			Upon successful login, your session token is stored in the config file under ~/.fnotes.
		`),
		Example: heredoc.Doc(`
			fnotes auth login
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.Config.Authenticated() {
				fmt.Println(
					"You are already authenticated. Please logout with the logout command if you'd like to change users.",
				)
			} else {
				if err := auth.Login(s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
