package services

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// Strips all markup pasted into text inputs.
	strict = bluemonday.StrictPolicy()
	reWS   = regexp.MustCompile(`\s+`)
)

// NormText cleans a free-text form value: tags removed, entities decoded,
// whitespace runs collapsed to one space, ends trimmed.
func NormText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	clean := html.UnescapeString(strict.Sanitize(s))
	return strings.TrimSpace(reWS.ReplaceAllString(clean, " "))
}

// NormIC trims an identity number. The format is not checked; staff verify
// it on the printed form.
func NormIC(s string) string {
	return strings.TrimSpace(reWS.ReplaceAllString(s, ""))
}

// NormDate keeps a YYYY-MM-DD date input as typed, trimmed.
func NormDate(s string) string {
	return strings.TrimSpace(s)
}
