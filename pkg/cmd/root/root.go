package root

import (
	"github.com/spf13/cobra"

	"fnotes/internal/constants"
	"fnotes/internal/state"
	"fnotes/pkg/cmd/auth"
	del "fnotes/pkg/cmd/delete"
	"fnotes/pkg/cmd/edit"
	exportcmd "fnotes/pkg/cmd/export"
	"fnotes/pkg/cmd/health"
	newcmd "fnotes/pkg/cmd/new"
	"fnotes/pkg/cmd/notes"
	"fnotes/pkg/cmd/settings"
	"fnotes/pkg/cmd/tasks"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "fnotes",
		Aliases: []string{"fn"},
		Short:   "Notes with checkboxes, images, and autosave, synced to your server.",
		Long: `A client for your self-hosted notes. Browse, edit, and export notes made of
  text, checkbox, bullet, and image rows; edits save automatically as you type.

  fnotes notes
  fnotes new "Trip Planning"
  `,
		Version: constants.Version,
		// The browser is the default entry point.
		RunE: notes.NewCmdNotes(s).RunE,
	}

	cmd.AddCommand(
		auth.NewCmdAuth(s),
		notes.NewCmdNotes(s),
		newcmd.NewCmdNew(s),
		edit.NewCmdEdit(s),
		del.NewCmdDelete(s),
		exportcmd.NewCmdExport(s),
		tasks.NewCmdTasks(s),
		health.NewCmdHealth(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}
