package export

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/export"
	"fnotes/internal/state"
	cmdutil "fnotes/pkg/cmd"
)

func NewCmdExport(s *state.State) *cobra.Command {
	var (
		formatFlag  string
		previewFlag bool
	)

	cmd := &cobra.Command{
		Use:     "export [note]",
		Aliases: []string{"x"},
		Short:   "Export a note to a file.",
		Long: heredoc.Doc(`
			Render a note to a file in the configured export directory and hand it
			to the configured share targets. The argument may be a note id or
			title; without one, a fuzzy finder lets you pick the note.
		`) + "\n" + formatHelp(),
		Example: heredoc.Doc(`
			fnotes export "Trip Planning"
			fnotes export "Trip Planning" --format html
			fnotes export --preview
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, formatFlag, previewFlag)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "F", "txt", "Export format (txt, md, html)")
	cmd.Flags().BoolVarP(&previewFlag, "preview", "p", false, "Print a rendered preview instead of writing a file")
	return cmd
}

func formatHelp() string {
	var b strings.Builder
	b.WriteString("Available formats:\n")
	for _, info := range export.Formats() {
		fmt.Fprintf(&b, "  %-5s %s - %s\n", info.Key, info.Label, info.Description)
	}
	return b.String()
}

func run(cmd *cobra.Command, args []string, s *state.State, formatFlag string, previewFlag bool) error {
	if err := cmdutil.SyncNotes(cmd, s); err != nil {
		return err
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	n, err := cmdutil.ResolveNote(s, arg, "Select a note to export")
	if err != nil {
		return err
	}

	if previewFlag {
		fmt.Println(export.Preview(n, 100))
		return nil
	}

	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	res, err := s.Exporter.Export(cmd.Context(), n, format)
	if err != nil {
		return err
	}

	fmt.Println(resultMessage(res))
	return nil
}

// resultMessage describes where the export went. Notice is only set when no
// share capability handled the file.
func resultMessage(res export.Result) string {
	if res.Notice != "" {
		return res.Notice
	}
	return fmt.Sprintf("Exported %s (shared via %s)", res.Path, res.SharedVia)
}
