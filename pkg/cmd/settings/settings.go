package settings

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"fnotes/internal/state"
)

var settingKeys = []string{
	"server_url",
	"export_dir",
	"archive_exports",
	"autosave_ms",
	"share.clipboard",
	"share.s3_bucket",
	"share.s3_region",
	"share.s3_prefix",
}

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Show and change client settings.",
		Long: heredoc.Doc(`
			Without arguments, print the current settings. Use the set subcommand
			to change a value.
		`),
		Example: heredoc.Doc(`
			fnotes settings
			fnotes settings set
			fnotes settings set server_url http://localhost:3001/api
			fnotes settings set autosave_ms 1500
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := s.Config
			fmt.Printf("server_url       %s\n", cfg.ServerURL)
			fmt.Printf("export_dir       %s\n", cfg.ExportDir)
			fmt.Printf("archive_exports  %t\n", cfg.ArchiveExports)
			fmt.Printf("autosave_ms      %d\n", cfg.AutosaveMillis)
			fmt.Printf("share.clipboard  %t\n", cfg.Share.Clipboard)
			fmt.Printf("share.s3_bucket  %s\n", cfg.Share.S3Bucket)
			return nil
		},
	}

	cmd.AddCommand(newCmdSet(s))
	return cmd
}

func newCmdSet(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change one setting and persist it.",
		Long: heredoc.Doc(`
			Without arguments, pick the setting from a list. Keys with a closed
			value set (booleans) also prompt for the value; other keys need it
			on the command line.
		`),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value, err := resolveArgs(args)
			if err != nil {
				return err
			}
			if err := apply(s, key, value); err != nil {
				return err
			}
			if err := s.Config.Save(); err != nil {
				return err
			}
			fmt.Printf("Set %s to %s\n", key, value)
			return nil
		},
	}
}

// resolveArgs fills in the key and value, prompting for whichever was left
// off when a selection can cover it.
func resolveArgs(args []string) (string, string, error) {
	key := ""
	if len(args) > 0 {
		key = args[0]
	} else {
		sel := selection.New("Pick a setting to change.", settingKeys)
		sel.Filter = nil
		k, err := sel.RunPrompt()
		if err != nil {
			return "", "", err
		}
		key = k
	}

	if len(args) == 2 {
		return key, args[1], nil
	}

	opts := valueChoices(key)
	if opts == nil {
		return "", "", fmt.Errorf("setting %s needs a value", key)
	}
	sel := selection.New(fmt.Sprintf("Pick a value for %s.", key), opts)
	sel.Filter = nil
	value, err := sel.RunPrompt()
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

// valueChoices returns the closed value set for a key, or nil when the key
// takes free-form input.
func valueChoices(key string) []string {
	switch key {
	case "archive_exports", "share.clipboard":
		return []string{"true", "false"}
	}
	return nil
}

func apply(s *state.State, key, value string) error {
	cfg := s.Config
	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "export_dir":
		cfg.ExportDir = value
	case "archive_exports":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("archive_exports expects true or false: %w", err)
		}
		cfg.ArchiveExports = b
	case "autosave_ms":
		ms, err := strconv.Atoi(value)
		if err != nil || ms <= 0 {
			return fmt.Errorf("autosave_ms expects a positive integer")
		}
		cfg.AutosaveMillis = ms
	case "share.clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("share.clipboard expects true or false: %w", err)
		}
		cfg.Share.Clipboard = b
	case "share.s3_bucket":
		cfg.Share.S3Bucket = value
	case "share.s3_region":
		cfg.Share.S3Region = value
	case "share.s3_prefix":
		cfg.Share.S3Prefix = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
