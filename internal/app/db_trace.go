package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace collapses whitespace and caps the statement length
// recorded on db spans. COPY statements are reduced to their target table.
func formatDBQueryForTrace(query string) string {
	normalized := queryWhitespaceRegex.ReplaceAllString(strings.TrimSpace(query), " ")
	if head, _, ok := strings.Cut(normalized, " ("); ok && strings.HasPrefix(strings.ToUpper(head), "COPY ") {
		return head
	}
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
