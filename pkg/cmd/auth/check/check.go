package check

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
)

func NewCmdCheck(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the stored session token is still usable",
		Long: heredoc.Doc(`
			Inspect the stored session token and report whether it has expired.
			An expired or missing token means commands that talk to the server will
			fail until you log in again.
		`),
		Example: heredoc.Doc(`
			fnotes auth check
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Session.Check(); err != nil {
				fmt.Printf("Session invalid: %v\n", err)
				return nil
			}
			fmt.Println("Session token is valid.")
			return nil
		},
	}

	return cmd
}
