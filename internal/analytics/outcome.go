package analytics

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

// OutcomeSet is a selection of records ordered by points, highest first.
// Records on equal points keep their source order.
type OutcomeSet []season.TeamRecord

// Champions returns every league winner of the season.
func Champions(set season.RecordSet) OutcomeSet {
	return outcome(set, season.TeamRecord.IsChampion)
}

// Relegated returns every team flagged as relegated.
func Relegated(set season.RecordSet) OutcomeSet {
	return outcome(set, season.TeamRecord.IsRelegated)
}

func outcome(set season.RecordSet, keep func(season.TeamRecord) bool) OutcomeSet {
	rows := filterRecords(set.Records, keep)
	slices.SortStableFunc(rows, func(a, b season.TeamRecord) int {
		return cmp.Compare(b.Points, a.Points)
	})
	return OutcomeSet(rows)
}
