package Planner

import (
	"regexp"
	"strings"
)

var jsonRe = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON returns the greedy first-"{"-to-last-"}" slice of free text.
// Known edge case: with multiple JSON blocks or trailing prose containing
// braces the slice can capture non-JSON content; the caller's parse step
// rejects it and falls through.
func ExtractJSON(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return s, true
	}
	if m := jsonRe.FindString(s); m != "" {
		return m, true
	}
	return "", false
}
