package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-roast/internal/rebuilds"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rebuildIndustry string

//nolint:gochecknoglobals // Cobra boilerplate
var rebuildCmd = &cobra.Command{
	Use:   "rebuild <resume-file>",
	Short: "Rewrite a resume as ATS, modern and industry versions",
	Args:  cobra.ExactArgs(1),
	RunE:  runRebuild,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rebuildCmd.Flags().StringVar(&rebuildIndustry, "industry", rebuilds.DefaultIndustry, "Target industry for the industry rewrite")
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, args []string) error {
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

	result, err := rebuilds.NewService(client).Rebuild(ctx, rebuilds.Request{ResumeText: text, Industry: rebuildIndustry})
	if err != nil {
		return errors.Wrap(err, "rebuild failed")
	}
	return writeJSON(cmd.OutOrStdout(), result)
}
