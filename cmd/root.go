package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learninghub",
	Short: "Turn notes into quizzes and flashcards",
	Long: `LearningHub is a terminal study tool that turns text into AI-generated
quizzes and flashcards, stored per profile in a local SQLite database.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides LEARNINGHUB_DB env var)")
	flags.String("config", "", "Path to config file (overrides LEARNINGHUB_CONFIG env var)")
	flags.StringP("profile", "P", "", "Profile to act as (overrides LEARNINGHUB_PROFILE env var)")
	flags.Bool("debug", false, "Log debug output to stderr")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(quizzesCmd)
	rootCmd.AddCommand(flashcardsCmd)
	rootCmd.AddCommand(limitsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
