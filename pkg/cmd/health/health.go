package health

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
)

func NewCmdHealth(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the server's health endpoint.",
		Long: heredoc.Doc(`
			Ping the configured server and report its status. Works without a
			session.
		`),
		Example: heredoc.Doc(`
			fnotes health
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := s.Client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("server unreachable at %s: %w", s.Config.ServerURL, err)
			}
			fmt.Printf("Server %s: %s\n", s.Config.ServerURL, h.Status)
			return nil
		},
	}

	return cmd
}
