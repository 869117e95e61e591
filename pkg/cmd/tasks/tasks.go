package tasks

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fnotes/internal/services/tasks"
	"fnotes/internal/state"
	cmdutil "fnotes/pkg/cmd"
)

func NewCmdTasks(s *state.State) *cobra.Command {
	var openOnly bool

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"t"},
		Short:   "Summarize checkbox tasks across all notes.",
		Long: heredoc.Doc(`
			List every checkbox row across your notes, grouped by note and ordered
			by the number of open tasks.
		`),
		Example: heredoc.Doc(`
			fnotes tasks
			fnotes tasks --open
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, openOnly)
		},
	}

	cmd.Flags().BoolVarP(&openOnly, "open", "o", false, "Only show unfinished tasks")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, openOnly bool) error {
	if err := cmdutil.SyncNotes(cmd, s); err != nil {
		return err
	}

	summaries, err := tasks.Collect(s.Store.All())
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, summary := range summaries {
		fmt.Printf("%s (%d open, %d done)\n", summary.NoteTitle, summary.Open, summary.Done)
		for _, item := range summary.Items {
			if openOnly && item.Completed {
				continue
			}
			mark := "[ ]"
			if item.Completed {
				mark = "[x]"
			}
			label := item.Content
			if label == "" {
				label = "(no label)"
			}
			fmt.Printf("  %s %s\n", mark, label)
		}
	}
	return nil
}
