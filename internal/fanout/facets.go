package fanout

import (
	"context"

	"resume-roast/internal/llm"
	"resume-roast/internal/prompts"
)

// FacetTasks builds one completion task per facet using the facet's prompt
// template and fixed generation settings.
func FacetTasks(client llm.Client, facets []prompts.Facet, opts prompts.Options, resumeText string) []Task {
	tasks := make([]Task, 0, len(facets))
	for _, facet := range facets {
		facet := facet
		tasks = append(tasks, Task{
			Name: string(facet),
			Run: func(ctx context.Context) (string, error) {
				settings, err := prompts.SettingsFor(facet)
				if err != nil {
					return "", err
				}
				prompt, err := prompts.Build(facet, opts, resumeText)
				if err != nil {
					return "", err
				}
				return client.Complete(ctx, llm.Request{
					Prompt:      prompt,
					MaxTokens:   settings.MaxTokens,
					Temperature: settings.Temperature,
				})
			},
		})
	}
	return tasks
}

// ByName indexes outcomes by task name.
func ByName(outcomes []Outcome) map[string]Outcome {
	out := make(map[string]Outcome, len(outcomes))
	for _, o := range outcomes {
		out[o.Name] = o
	}
	return out
}

// Failed returns the names of failed outcomes, in task order.
func Failed(outcomes []Outcome) []string {
	var names []string
	for _, o := range outcomes {
		if o.Err != nil {
			names = append(names, o.Name)
		}
	}
	return names
}
