package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	"resume-roast/internal/analyses"
	"resume-roast/internal/checkout"
	"resume-roast/internal/export"
	"resume-roast/internal/llm"
	"resume-roast/internal/llm/claude"
	"resume-roast/internal/llm/gemini"
	"resume-roast/internal/llm/openai"
	"resume-roast/internal/rebuilds"
	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/config"
	"resume-roast/internal/shared/server"
	"resume-roast/internal/shared/telemetry"
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Client
	AnalysesService *analyses.Service
	RebuildsService *rebuilds.Service
	CheckoutService *checkout.Service
	AnalysisHandler *analyses.Handler
	RebuildHandler  *rebuilds.Handler
	CheckoutHandler *checkout.Handler
	ExportHandler   *export.Handler
	closers         []func() error
}

// Build wires services, handlers and routes. Missing credentials do not fail
// the build; the affected endpoints report configuration_error per request.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	app := &App{Config: cfg}

	llmClient, closer, err := NewLLMClient(ctx, cfg)
	switch {
	case errors.Is(err, apperr.ErrConfiguration):
		telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{
			"provider": cfg.LLMProvider,
		})
	case err != nil:
		return nil, err
	default:
		app.LLM = llmClient
		if closer != nil {
			app.closers = append(app.closers, closer)
		}
	}

	var processor checkout.Processor
	if cfg.StripeSecretKey != "" {
		stripeProcessor, err := checkout.NewStripeProcessor(cfg.StripeSecretKey, cfg.StripeAPIURL)
		if err != nil {
			return nil, fmt.Errorf("stripe: %w", err)
		}
		processor = stripeProcessor
	} else {
		telemetry.Warn("bootstrap.stripe_unconfigured", map[string]any{})
	}

	app.AnalysesService = analyses.NewService(app.LLM)
	app.RebuildsService = rebuilds.NewService(app.LLM)
	app.CheckoutService = checkout.NewService(processor, cfg.PublicBaseURL)

	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, cfg.MaxUploadBytes)
	app.RebuildHandler = rebuilds.NewHandler(app.RebuildsService, cfg.MaxUploadBytes)
	app.CheckoutHandler = checkout.NewHandler(app.CheckoutService)
	app.ExportHandler = export.NewHandler()

	app.Router = server.NewRouter(cfg, server.Handlers{
		Analyze:  app.AnalysisHandler.Analyze,
		Rebuild:  app.RebuildHandler.Rebuild,
		Checkout: app.CheckoutHandler.Create,
		Features: []server.RouteRegistrar{
			app.AnalysisHandler,
			app.RebuildHandler,
			app.CheckoutHandler,
			app.ExportHandler,
		},
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":             cfg.Env,
		"llm_provider":    cfg.LLMProvider,
		"llm_configured":  app.LLM != nil,
		"stripe_enabled":  processor != nil,
		"max_upload_size": cfg.MaxUploadBytes,
	})
	return app, nil
}

// Close releases provider clients.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewLLMClient constructs the completion client for cfg.LLMProvider. A missing
// credential yields an error wrapping apperr.ErrConfiguration. The returned
// closer may be nil.
func NewLLMClient(ctx context.Context, cfg config.Config) (llm.Client, func() error, error) {
	provider := config.NormalizeProvider(cfg.LLMProvider)
	switch provider {
	case "gemini":
		var opts []option.ClientOption
		if cfg.LLMBaseURL != "" {
			opts = append(opts, option.WithEndpoint(cfg.LLMBaseURL))
		}
		c, err := gemini.NewClient(ctx, cfg.CompletionAPIKey, cfg.LLMModel, opts...)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	case "anthropic":
		c, err := claude.NewClient(cfg.CompletionAPIKey, cfg.LLMModel, cfg.LLMBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return c, nil, nil
	default:
		c, err := openai.NewClient(openai.Options{
			Provider: provider,
			APIKey:   cfg.CompletionAPIKey,
			Model:    cfg.LLMModel,
			URL:      cfg.LLMBaseURL,
			Timeout:  cfg.LLMTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, nil, nil
	}
}
