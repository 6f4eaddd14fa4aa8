package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learninghub/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	// Console logs draw over the TUI, so they stay off unless --debug is set.
	d, err := openDeps(cmd, depsOptions{})
	if err != nil {
		return err
	}
	defer d.Close()

	if d.providerErr != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", d.providerErr)
		fmt.Fprintln(os.Stderr, "Quiz and flashcard generation will be unavailable.")
	}

	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Library:     d.library,
		Profile:     d.profile,
		CanGenerate: d.providerErr == nil,
		SkipWelcome: skip,
		Log:         d.log,
	})
}

func init() {
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")
}
