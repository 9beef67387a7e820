// Package cmd implements the CLI commands for keyprice-bot.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "keyprice-bot",
	Short: "Chat-driven automotive key price lookups",
	Long: "A Telegram bot that answers automotive key pricing questions from a\n" +
		"shared vehicle record database, walks users through make, model, and\n" +
		"year disambiguation, and lets authorized users push audited price\n" +
		"updates back to the database.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
