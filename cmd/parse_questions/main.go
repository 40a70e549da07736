package main

import (
	"os"

	"devops-reference/internal/config"
	"devops-reference/internal/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parse_questions",
	Short: "Convert the interview questions README into questions.json",
	Long: "parse_questions reads the markdown question document, extracts every question " +
		"and answer, and writes the structured file the API server prefers at load time.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		return logger.Initialize(config.LoggerConfig{Level: level, Env: "development"})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		_, err := convert(in, out)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().String("in", "README.md", "Path to the markdown question document")
	rootCmd.Flags().String("out", "questions.json", "Path of the structured file to write")

	rootCmd.AddCommand(validateCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
