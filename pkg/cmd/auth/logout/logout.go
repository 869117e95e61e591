package logout

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
)

func NewCmdLogout(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Logout of your account",
		Long: heredoc.Doc(`
			Clear the stored session token and user from the config file.
		`),
		Example: heredoc.Doc(`
			fnotes auth logout
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Session.Logout(); err != nil {
				return err
			}
			fmt.Println("Successfully logged out.")
			return nil
		},
	}

	return cmd
}
