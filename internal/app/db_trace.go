package app

import (
	"regexp"
	"strings"
)

// Upsert statements from the ingestion path can carry dozens of bind
// parameters; cap what lands in span attributes.
const maxTracedQueryLength = 400

var collapseWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	compact := collapseWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(compact) > maxTracedQueryLength {
		compact = compact[:maxTracedQueryLength] + "..."
	}
	return compact
}
