package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-roast/internal/fanout"
	"resume-roast/internal/llm"
	"resume-roast/internal/parse"
	"resume-roast/internal/prompts"
	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/metrics"
	"resume-roast/internal/shared/telemetry"
)

// Service runs the five analysis facets against the completion service.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service. A nil client means no credential is configured.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Configured reports whether a completion client is available.
func (s *Service) Configured() bool {
	return s != nil && s.LLM != nil
}

// Analyze fans out every facet concurrently. A failed facet falls back to its
// default text; only a total outage is returned as an error.
func (s *Service) Analyze(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		return Result{}, fmt.Errorf("analyze: resume text is empty: %w", apperr.ErrMissingInput)
	}
	if !s.Configured() {
		return Result{}, fmt.Errorf("analyze: completion client: %w", apperr.ErrConfiguration)
	}
	req = req.normalized()
	opts := prompts.Options{Mode: req.Mode, Industry: req.Industry, PersonaMode: req.PersonaMode}

	outcomes := fanout.Run(ctx, fanout.FacetTasks(s.LLM, prompts.AnalysisFacets, opts, req.ResumeText))
	failed := fanout.Failed(outcomes)
	if len(failed) == len(outcomes) {
		metrics.IncRequest("analyze", metrics.OutcomeFailed)
		return Result{}, fmt.Errorf("analyze: every facet failed: %w", firstError(outcomes))
	}
	if len(failed) > 0 {
		metrics.IncRequest("analyze", metrics.OutcomeFallback)
		telemetry.Warn("analysis.degraded", map[string]any{
			"request_id":    telemetry.RequestID(ctx),
			"failed_facets": strings.Join(failed, ","),
		})
	} else {
		metrics.IncRequest("analyze", metrics.OutcomeOK)
	}

	return assemble(req, fanout.ByName(outcomes)), nil
}

func assemble(req Request, byName map[string]fanout.Outcome) Result {
	text := func(f prompts.Facet) string {
		o := byName[string(f)]
		if o.Err != nil {
			return ""
		}
		return o.Text
	}
	return Result{
		Roast:           parse.Passthrough(text(prompts.FacetRoast), parse.DefaultRoast),
		BiasFilters:     parse.BiasFiltersOrDefault(text(prompts.FacetBias)),
		FirstImpression: parse.FirstImpressions(text(prompts.FacetImpression)),
		IndustryView:    parse.Passthrough(text(prompts.FacetIndustry), parse.DefaultIndustryView(req.Industry)),
		PersonaAnalysis: parse.Passthrough(text(prompts.FacetPersona), parse.DefaultPersonaAnalysis(req.PersonaMode)),
	}
}

func firstError(outcomes []fanout.Outcome) error {
	for _, o := range outcomes {
		if o.Err != nil {
			if errors.Is(o.Err, apperr.ErrCompletionService) {
				return o.Err
			}
			return llm.ServiceError("facet "+o.Name, o.Err)
		}
	}
	return apperr.ErrCompletionService
}
