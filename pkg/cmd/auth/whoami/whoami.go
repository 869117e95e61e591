package whoami

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
)

func NewCmdWhoami(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged in user",
		Long: heredoc.Doc(`
			Print the name and email of the account attached to the stored session.
		`),
		Example: heredoc.Doc(`
			fnotes auth whoami
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := s.Session.CurrentUser()
			if !ok {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	return cmd
}
