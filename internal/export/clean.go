// Package export turns displayed roast and rebuild text into a downloadable PDF.
package export

import "regexp"

type substitution struct {
	pattern *regexp.Regexp
	repl    string
}

// Applied in order; each rule sees the output of the previous one.
var substitutions = []substitution{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},
	{regexp.MustCompile(`\*(.*?)\*`), "$1"},
	{regexp.MustCompile(`#{1,6}\s`), ""},
	{regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`), "$1"},
	{regexp.MustCompile("`([^`]+)`"), "$1"},
	{regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]`), "• "},
	// Inline: a dash between blanks, followed by a letter.
	{regexp.MustCompile(`([ \t])-[ \t]+(\pL)`), "${1}• ${2}"},
}

// Clean strips lightweight markup: bold and italic markers, heading markers,
// link syntax, inline code, and bullet markers (normalized to "• ").
func Clean(text string) string {
	for _, s := range substitutions {
		text = s.pattern.ReplaceAllString(text, s.repl)
	}
	return text
}
