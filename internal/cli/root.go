// Package cli implements the beetsheet command surface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/j6k4m8/beetsheet/internal/config"
	"github.com/j6k4m8/beetsheet/internal/errmsg"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	root := newRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "beetsheet",
		Short: "Bulk music tag editor",
		Long:  "beetsheet edits the tags of many music files at once: filename heuristics, bulk field edits, and cover art.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.AddCommand(newListCommand(cfg))
	root.AddCommand(newGuessCommand(cfg))
	root.AddCommand(newSetCommand(cfg))
	root.AddCommand(newArtCommand(cfg))
	root.AddCommand(newPlayCommand(cfg))

	return root
}
