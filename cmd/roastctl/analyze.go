package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-roast/internal/analyses"
	"resume-roast/internal/prompts"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	analyzeMode     string
	analyzeIndustry string
	analyzePersona  string
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Roast a resume and run every analysis facet",
	Long: `Roast a resume and print the combined analysis as JSON.

Example:
  roastctl analyze cv.pdf --mode genz --industry finance --persona evil`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", string(prompts.RoastSavage), "Roast mode: savage, genz or gentle")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", analyses.DefaultIndustry, "Target industry")
	analyzeCmd.Flags().StringVar(&analyzePersona, "persona", analyses.DefaultPersonaMode, "Persona mode: realistic, idealized, shadow or evil")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	routeLogs(cmd, verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	text, err := readResume(ctx, args[0])
	if err != nil {
		return err
	}
	client, cleanup, err := newCompletionClient(ctx, llmProvider, llmModel)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := analyses.NewService(client).Analyze(ctx, analyses.Request{
		ResumeText:  text,
		Mode:        prompts.RoastMode(analyzeMode),
		Industry:    analyzeIndustry,
		PersonaMode: analyzePersona,
	})
	if err != nil {
		return errors.Wrap(err, "analysis failed")
	}
	return writeJSON(cmd.OutOrStdout(), result)
}
