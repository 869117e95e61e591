package delete

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
	cmdutil "fnotes/pkg/cmd"
)

func NewCmdDelete(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete [note]",
		Aliases: []string{"rm"},
		Short:   "Delete a note.",
		Long: heredoc.Doc(`
			Delete a note from the server. The argument may be a note id or title;
			without one, a fuzzy finder lets you pick the note.
			The note disappears locally right away even if the server call fails.
		`),
		Example: heredoc.Doc(`
			fnotes delete "Old List"
			fnotes delete --force
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State, force bool) error {
	if err := cmdutil.SyncNotes(cmd, s); err != nil {
		return err
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	n, err := cmdutil.ResolveNote(s, arg, "Select a note to delete")
	if err != nil {
		return err
	}

	if !force && !confirm(n.Title) {
		fmt.Println("Aborted.")
		return nil
	}

	// Local removal stands even when the server call fails.
	if err := s.Store.Delete(cmd.Context(), n.ID()); err != nil {
		fmt.Printf("Deleted %q locally; server delete failed: %v\n", n.Title, err)
		return nil
	}

	fmt.Printf("Deleted %q.\n", n.Title)
	return nil
}

func confirm(title string) bool {
	var response string
	fmt.Printf("Delete %q? (y/n): ", title)
	fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
