package new

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/note"
	"fnotes/internal/state"
	"fnotes/internal/tui/editor"
	cmdutil "fnotes/pkg/cmd"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var noEdit bool

	cmd := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"create"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Create a note on the server and open it in the row editor.
			Without a title argument the note is created as "New Note".
		`),
		Example: heredoc.Doc(`
			fnotes new
			fnotes new "Trip Planning"
			fnotes new "Inbox" --no-edit
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, noEdit)
		},
	}

	cmd.Flags().BoolVar(&noEdit, "no-edit", false, "Create the note without opening the editor")
	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State, noEdit bool) error {
	if err := cmdutil.EnsureSession(s); err != nil {
		return err
	}

	title := note.DefaultTitle
	if len(args) > 0 {
		title = strings.Join(args, " ")
	}

	n, err := s.Store.Create(cmd.Context(), title, nil)
	if err != nil {
		return err
	}

	if noEdit {
		cmd.Printf("Created note %s\n", n.ID())
		return nil
	}

	return editor.Run(s, n)
}
