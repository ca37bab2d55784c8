package analyses

import (
	"resume-roast/internal/parse"
	"resume-roast/internal/prompts"
)

// Defaults applied to blank form fields.
const (
	DefaultIndustry    = "tech"
	DefaultPersonaMode = "realistic"
)

// Request carries the extracted resume text and the user's selectors.
type Request struct {
	ResumeText  string
	Mode        prompts.RoastMode
	Industry    string
	PersonaMode string
}

// Result is the combined analysis. Every text field is non-empty.
type Result struct {
	Roast           string                `json:"roast"`
	BiasFilters     []parse.BiasFilter    `json:"biasFilters"`
	FirstImpression parse.FirstImpression `json:"firstImpression"`
	IndustryView    string                `json:"industryView"`
	PersonaAnalysis string                `json:"personaAnalysis"`
}

func (r Request) normalized() Request {
	r.Mode = prompts.ParseRoastMode(string(r.Mode))
	if r.Industry == "" {
		r.Industry = DefaultIndustry
	}
	if r.PersonaMode == "" {
		r.PersonaMode = DefaultPersonaMode
	}
	return r
}
