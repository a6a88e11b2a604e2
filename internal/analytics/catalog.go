// Package analytics derives league tables, outcome sets and team comparisons
// from one season's record set. Every function is pure: inputs are never
// mutated and nothing is retained between calls.
package analytics

import (
	"slices"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

// ListTeams returns every distinct squad name in ordinal ascending order.
func ListTeams(set season.RecordSet) []string {
	names := make([]string, 0, len(set.Records))
	for _, record := range set.Records {
		names = append(names, record.Squad)
	}
	slices.Sort(names)
	return slices.Compact(names)
}
