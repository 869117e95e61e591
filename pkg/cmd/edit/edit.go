package edit

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
	"fnotes/internal/tui/editor"
	cmdutil "fnotes/pkg/cmd"
)

func NewCmdEdit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [note]",
		Aliases: []string{"e"},
		Short:   "Edit a note's rows.",
		Long: heredoc.Doc(`
			Open a note in the row editor. The argument may be a note id or title;
			without one, a fuzzy finder lets you pick the note.
			Edits save automatically while you type.
		`),
		Example: heredoc.Doc(`
			fnotes edit
			fnotes edit "Trip Planning"
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	if err := cmdutil.SyncNotes(cmd, s); err != nil {
		return err
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	n, err := cmdutil.ResolveNote(s, arg, "Select a note to edit")
	if err != nil {
		return err
	}

	return editor.Run(s, n)
}
