// Package fanout runs independent facet calls concurrently and joins them.
// A failing task never cancels or blocks its siblings.
package fanout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"resume-roast/internal/shared/metrics"
	"resume-roast/internal/shared/telemetry"
)

// Task is one named unit of work.
type Task struct {
	Name string
	Run  func(ctx context.Context) (string, error)
}

// Outcome is the result of one Task. Outcomes are returned in task order.
type Outcome struct {
	Name     string
	Text     string
	Err      error
	Duration time.Duration
}

// Run executes every task concurrently and waits for all of them. The caller's
// context is passed through unchanged, so cancelling it reaches every task.
func Run(ctx context.Context, tasks []Task) []Outcome {
	outcomes := make([]Outcome, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			outcomes[i] = runOne(ctx, task)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func runOne(ctx context.Context, task Task) (out Outcome) {
	reqID := telemetry.RequestID(ctx)
	out.Name = task.Name
	start := time.Now()
	telemetry.Info("facet.start", map[string]any{
		"request_id": reqID,
		"facet":      task.Name,
	})

	defer func() {
		if rec := recover(); rec != nil {
			out.Text = ""
			out.Err = fmt.Errorf("facet %s panicked: %v", task.Name, rec)
		}
		out.Duration = time.Since(start)
		durationMs := float64(out.Duration.Microseconds()) / 1000.0
		metrics.ObserveFacetDurationMs(durationMs)

		fields := map[string]any{
			"request_id":  reqID,
			"facet":       task.Name,
			"duration_ms": durationMs,
		}
		switch {
		case out.Err != nil:
			fields["error"] = out.Err.Error()
			metrics.IncFacet(task.Name, metrics.OutcomeFailed)
			telemetry.Error("facet.failed", fields)
		case strings.TrimSpace(out.Text) == "":
			metrics.IncFacet(task.Name, metrics.OutcomeEmpty)
			telemetry.Warn("facet.empty", fields)
		default:
			fields["chars"] = len(out.Text)
			metrics.IncFacet(task.Name, metrics.OutcomeOK)
			telemetry.Info("facet.complete", fields)
		}
	}()

	out.Text, out.Err = task.Run(ctx)
	return out
}
