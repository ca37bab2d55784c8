package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-roast/internal/export"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	exportLabel  string
	exportOutDir string
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export <text-file>",
	Short: "Strip markup from text and write it as a PDF",
	Long: `Strip lightweight markup from a text or markdown file and write a PDF
named resume-<label>.pdf.

Example:
  roastctl export ats.md --label ATS --out ./exports`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	exportCmd.Flags().StringVar(&exportLabel, "label", export.DefaultLabel, "Label used in the title and file name")
	exportCmd.Flags().StringVar(&exportOutDir, "out", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}
	if err = os.MkdirAll(exportOutDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", exportOutDir)
	}

	path := filepath.Join(exportOutDir, export.FileName(exportLabel))
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "failed to close %s", path)
		}
	}()

	if err = export.RenderPDF(f, exportLabel, string(content)); err != nil {
		return errors.Wrap(err, "failed to render pdf")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
