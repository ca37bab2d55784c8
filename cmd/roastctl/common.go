package main

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-roast/internal/bootstrap"
	"resume-roast/internal/extract"
	"resume-roast/internal/llm"
	"resume-roast/internal/shared/config"
	"resume-roast/internal/shared/telemetry"
)

// readResume loads a resume file and extracts its text. The declared type is
// taken from the file extension.
func readResume(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	text, err := extract.Text(ctx, data, mimeType)
	if err != nil {
		return "", errors.Wrapf(err, "failed to extract text from %s", path)
	}
	return text, nil
}

// newCompletionClient builds the configured client. The returned cleanup is
// never nil.
func newCompletionClient(ctx context.Context, provider, model string) (llm.Client, func(), error) {
	cfg := config.Load()
	if provider != "" {
		cfg.UseProvider(provider)
	}
	if model != "" {
		cfg.LLMModel = model
	}
	client, closer, err := bootstrap.NewLLMClient(ctx, cfg)
	if err != nil {
		return nil, func() {}, errors.Wrapf(err, "failed to create %s client", cfg.LLMProvider)
	}
	cleanup := func() {
		if closer != nil {
			_ = closer()
		}
	}
	return client, cleanup, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return errors.Wrap(enc.Encode(v), "failed to encode result")
}

// routeLogs keeps stdout for results: logs go to stderr when verbose and are
// discarded otherwise.
func routeLogs(cmd *cobra.Command, verbose bool) {
	if verbose {
		telemetry.SetOutput(cmd.ErrOrStderr())
		return
	}
	telemetry.SetOutput(io.Discard)
}
