package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
	"fnotes/internal/tui/editor"
	notestui "fnotes/internal/tui/notes"
	cmdutil "fnotes/pkg/cmd"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"n", "browse"},
		Short:   "Browse your notes with a live preview.",
		Long: heredoc.Doc(`
			Open the interactive note browser. Selecting a note drops you into the
			row editor; closing the editor returns to the browser.
		`),
		Example: heredoc.Doc(`
			fnotes notes
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	if err := cmdutil.SyncNotes(cmd, s); err != nil {
		return err
	}

	for {
		n, ok, err := notestui.Run(s)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := editor.Run(s, n); err != nil {
			return err
		}
	}
}
