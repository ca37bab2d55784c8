// Package prompts turns a facet, the caller's options and resume text into the
// instruction sent to the completion service.
package prompts

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed templates/*.txt
var templateFS embed.FS

// Facet names one independent analysis or rewrite sub-task.
type Facet string

const (
	FacetRoast           Facet = "roast"
	FacetBias            Facet = "bias"
	FacetImpression      Facet = "impression"
	FacetIndustry        Facet = "industry"
	FacetPersona         Facet = "persona"
	FacetATS             Facet = "ats"
	FacetModern          Facet = "modern"
	FacetIndustryRewrite Facet = "industry_rewrite"
)

// AnalysisFacets are fanned out by the analyze flow, in result order.
var AnalysisFacets = []Facet{FacetRoast, FacetBias, FacetImpression, FacetIndustry, FacetPersona}

// RebuildFacets are fanned out by the rebuild flow, in result order.
var RebuildFacets = []Facet{FacetATS, FacetModern, FacetIndustryRewrite}

// RoastMode selects the roast instruction.
type RoastMode string

const (
	RoastSavage RoastMode = "savage"
	RoastGenZ   RoastMode = "genz"
	RoastGentle RoastMode = "gentle"
)

// ParseRoastMode maps a form value onto a known mode; anything else is savage.
func ParseRoastMode(raw string) RoastMode {
	switch RoastMode(strings.ToLower(strings.TrimSpace(raw))) {
	case RoastGenZ:
		return RoastGenZ
	case RoastGentle:
		return RoastGentle
	default:
		return RoastSavage
	}
}

// Options carries the user's selectors. Industry and PersonaMode are free-form.
type Options struct {
	Mode        RoastMode
	Industry    string
	PersonaMode string
}

// Settings are the fixed generation parameters of a facet.
type Settings struct {
	MaxTokens   int
	Temperature float64
	// Budget caps how many characters of resume text reach the prompt.
	Budget int
}

const (
	longBudget  = 2000
	shortBudget = 1500
)

var settings = map[Facet]Settings{
	FacetRoast:           {MaxTokens: 500, Temperature: 0.7, Budget: longBudget},
	FacetBias:            {MaxTokens: 800, Temperature: 0.6, Budget: shortBudget},
	FacetImpression:      {MaxTokens: 400, Temperature: 0.5, Budget: shortBudget},
	FacetIndustry:        {MaxTokens: 200, Temperature: 0.6, Budget: shortBudget},
	FacetPersona:         {MaxTokens: 300, Temperature: 0.7, Budget: shortBudget},
	FacetATS:             {MaxTokens: 800, Temperature: 0.3, Budget: longBudget},
	FacetModern:          {MaxTokens: 800, Temperature: 0.5, Budget: longBudget},
	FacetIndustryRewrite: {MaxTokens: 800, Temperature: 0.4, Budget: longBudget},
}

// ErrUnknownFacet is returned for a facet outside the template table.
var ErrUnknownFacet = errors.New("unknown facet")

// SettingsFor returns the generation parameters of a facet.
func SettingsFor(f Facet) (Settings, error) {
	s, ok := settings[f]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %s", ErrUnknownFacet, f)
	}
	return s, nil
}

// Build renders the prompt for a facet. Resume text is truncated to the facet's
// budget and interpolated raw; nothing is escaped.
func Build(f Facet, opts Options, resumeText string) (string, error) {
	s, err := SettingsFor(f)
	if err != nil {
		return "", err
	}
	tmpl, err := template(f, opts.Mode)
	if err != nil {
		return "", err
	}
	replacer := strings.NewReplacer(
		"{{RESUME}}", Truncate(resumeText, s.Budget),
		"{{INDUSTRY}}", opts.Industry,
		"{{PERSONA_MODE}}", opts.PersonaMode,
	)
	return replacer.Replace(tmpl), nil
}

// Truncate keeps at most budget characters (runes) of text.
func Truncate(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == budget {
			return text[:i]
		}
		count++
	}
	return text
}

func template(f Facet, mode RoastMode) (string, error) {
	name := string(f)
	switch f {
	case FacetRoast:
		name = "roast_" + string(ParseRoastMode(string(mode)))
	case FacetATS:
		name = "rebuild_ats"
	case FacetModern:
		name = "rebuild_modern"
	case FacetIndustryRewrite:
		name = "rebuild_industry"
	}
	raw, err := templateFS.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: template %s", ErrUnknownFacet, name)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}
