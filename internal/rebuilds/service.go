package rebuilds

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

// Service produces the ATS, modern and industry rewrites of a resume.
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

// Rebuild runs the three rewrites concurrently with the same failure policy as
// analysis: per-rewrite fallbacks, error only when all of them fail.
func (s *Service) Rebuild(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		return Result{}, fmt.Errorf("rebuild: resume text is empty: %w", apperr.ErrMissingInput)
	}
	if !s.Configured() {
		return Result{}, fmt.Errorf("rebuild: completion client: %w", apperr.ErrConfiguration)
	}
	req = req.normalized()
	opts := prompts.Options{Industry: req.Industry}

	outcomes := fanout.Run(ctx, fanout.FacetTasks(s.LLM, prompts.RebuildFacets, opts, req.ResumeText))
	failed := fanout.Failed(outcomes)
	if len(failed) == len(outcomes) {
		metrics.IncRequest("rebuild", metrics.OutcomeFailed)
		return Result{}, fmt.Errorf("rebuild: every rewrite failed: %w", firstError(outcomes))
	}
	if len(failed) > 0 {
		metrics.IncRequest("rebuild", metrics.OutcomeFallback)
		telemetry.Warn("rebuild.degraded", map[string]any{
			"request_id":    telemetry.RequestID(ctx),
			"failed_facets": strings.Join(failed, ","),
		})
	} else {
		metrics.IncRequest("rebuild", metrics.OutcomeOK)
	}

	byName := fanout.ByName(outcomes)
	text := func(f prompts.Facet) string {
		o := byName[string(f)]
		if o.Err != nil {
			return ""
		}
		return o.Text
	}
	return Result{
		ATSVersion:      parse.Passthrough(text(prompts.FacetATS), parse.DefaultATSVersion),
		ModernVersion:   parse.Passthrough(text(prompts.FacetModern), parse.DefaultModernVersion),
		IndustryVersion: parse.Passthrough(text(prompts.FacetIndustryRewrite), parse.DefaultIndustryVersion(req.Industry)),
	}, nil
}

func firstError(outcomes []fanout.Outcome) error {
	for _, o := range outcomes {
		if o.Err == nil {
			continue
		}
		if errors.Is(o.Err, apperr.ErrCompletionService) {
			return o.Err
		}
		return llm.ServiceError("facet "+o.Name, o.Err)
	}
	return apperr.ErrCompletionService
}
