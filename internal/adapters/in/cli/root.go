// Package cli implements the CLI adapter for platelens.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// NewRootCmd creates the root command for the platelens CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "platelens",
		Short: "platelens - nutrition estimates from food photos",
		Long: `platelens turns a photo of a meal into a nutrition report.

The image is normalized, sent to a Gemini model together with a nutrition
prompt, and the JSON answer is extracted from the model's reply. Run it as
an HTTP service with 'serve' or analyze a single file with 'analyze'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("platelens %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		BuildDate = date
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version, commit, date string) {
	SetVersionInfo(version, commit, date)
	if err := NewRootCmd().Execute(); err != nil {
		_ = cliWriteLine(os.Stderr, cliRenderError(err.Error()))
		os.Exit(1)
	}
}
