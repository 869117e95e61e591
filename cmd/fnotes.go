package cmd

import (
	"fmt"
	"os"

	"fnotes/internal/state"
	"fnotes/pkg/cmd/root"
)

func Execute() {
	s, err := state.NewState()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure commands: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
