// Command roastctl runs resume analyses, rebuilds and exports from the terminal
// using the same services as the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:           "roastctl",
	Short:         "Roast, analyze and rebuild resumes from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	llmProvider string
	llmModel    string
	verbose     bool
)

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&llmProvider, "provider", "", "Completion provider (overrides LLM_PROVIDER)")
	rootCmd.PersistentFlags().StringVar(&llmModel, "model", "", "Completion model (overrides LLM_MODEL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write structured logs to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
