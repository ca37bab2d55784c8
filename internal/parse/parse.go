// Package parse carves free-form completion text into typed fields. Every
// function here is pure and falls back to a literal default instead of failing.
package parse

import (
	"fmt"
	"strings"
)

const maxBiasFilters = 8

// Fallback defaults surfaced when a facet yields nothing usable.
const (
	DefaultThreeSecond    = "Quick scan shows organized layout but generic content."
	DefaultSevenSecond    = "Deeper look reveals solid experience but lacks standout achievements."
	DefaultRoast          = "Your resume needs work!"
	DefaultATSVersion     = "ATS-optimized version coming soon..."
	DefaultModernVersion  = "Modern design version coming soon..."
	defaultBiasPersona    = "Hiring Panel"
	defaultBiasPerception = "The panel could not agree on a verdict this time."
)

const (
	threeSecondMarker = "3-Second"
	sevenSecondMarker = "7-Second"
)

// BiasFilter is one hiring-manager persona's read of the resume.
type BiasFilter struct {
	Persona    string `json:"persona"`
	Perception string `json:"perception"`
}

// FirstImpression holds the simulated 3- and 7-second scans.
type FirstImpression struct {
	ThreeSecond string `json:"threeSecond"`
	SevenSecond string `json:"sevenSecond"`
}

// BiasFilters keeps lines containing a colon, splits each at the first colon and
// returns at most eight entries in source order.
func BiasFilters(text string) []BiasFilter {
	out := make([]BiasFilter, 0, maxBiasFilters)
	for _, line := range strings.Split(text, "\n") {
		if len(out) == maxBiasFilters {
			break
		}
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		out = append(out, BiasFilter{
			Persona:    strings.TrimSpace(label),
			Perception: strings.TrimSpace(value),
		})
	}
	return out
}

// BiasFiltersOrDefault is BiasFilters with a single placeholder entry when
// nothing could be parsed.
func BiasFiltersOrDefault(text string) []BiasFilter {
	out := BiasFilters(text)
	if len(out) == 0 {
		return []BiasFilter{{Persona: defaultBiasPersona, Perception: defaultBiasPerception}}
	}
	for i := range out {
		if out[i].Persona == "" {
			out[i].Persona = defaultBiasPersona
		}
		if out[i].Perception == "" {
			out[i].Perception = defaultBiasPerception
		}
	}
	return out
}

// FirstImpressions finds the 3-Second and 7-Second lines. Each field is
// defaulted on its own when its marker is missing or carries no text.
func FirstImpressions(text string) FirstImpression {
	lines := strings.Split(text, "\n")
	return FirstImpression{
		ThreeSecond: markedValue(lines, threeSecondMarker, DefaultThreeSecond),
		SevenSecond: markedValue(lines, sevenSecondMarker, DefaultSevenSecond),
	}
}

func markedValue(lines []string, marker, fallback string) string {
	for _, line := range lines {
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}
		value := strings.TrimLeft(line[idx+len(marker):], " \t:-–—*_).]")
		value = strings.TrimSpace(value)
		if value == "" {
			return fallback
		}
		return value
	}
	return fallback
}

// Passthrough returns the completion text verbatim unless it is blank.
func Passthrough(text, fallback string) string {
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

// DefaultIndustryView is the industry facet fallback.
func DefaultIndustryView(industry string) string {
	return fmt.Sprintf("In %s: needs industry-specific optimization", industry)
}

// DefaultPersonaAnalysis is the persona facet fallback.
func DefaultPersonaAnalysis(personaMode string) string {
	return fmt.Sprintf("%s analysis: Your resume shows potential but needs refinement.", personaMode)
}

// DefaultIndustryVersion is the industry rewrite fallback.
func DefaultIndustryVersion(industry string) string {
	return fmt.Sprintf("%s-specific version coming soon...", industry)
}
