// Sanad is a terminal client for social support applications.
//
// It provides a three-step application wizard with draft autosave, inline
// validation, English and Arabic interfaces, and AI-assisted writing for
// the free-text answers. Drafts are stored locally and survive restarts;
// the OpenAI API key for assisted writing is read from the OPENAI_API_KEY
// environment variable.
//
// Usage:
//
//	sanad [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'sanad --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/sanad/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sanad",
	Short: "Social support application wizard",
	Long: `A terminal client for filling in and submitting social support applications.

The wizard walks through personal details, financial information, and
assistance details, validating each step and saving a draft after every
change. The free-text answers offer AI-assisted writing when an OpenAI
API key is configured.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
}

func init() {
	// Default behavior: run wizard when no subcommand provided.
	// Assigned here rather than in the literal to avoid an
	// initialization cycle through runWizard -> loadSettings -> rootCmd.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runWizard(cmd, args)
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sanad %s (commit: %s)\n", version.Version, version.Commit)
	},
}
