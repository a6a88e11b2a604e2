package analytics

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

// LeagueTable is one league's records ordered by finishing position.
type LeagueTable struct {
	Country string
	Rows    []season.TeamRecord
}

// BuildLeagueTable selects the records of one country. An unknown country
// yields an empty table; validating the code is the caller's job.
func BuildLeagueTable(set season.RecordSet, country string) LeagueTable {
	rows := filterRecords(set.Records, func(r season.TeamRecord) bool {
		return r.Country == country
	})
	slices.SortStableFunc(rows, func(a, b season.TeamRecord) int {
		return cmp.Compare(a.LeagueRank, b.LeagueRank)
	})

	return LeagueTable{Country: country, Rows: rows}
}

func filterRecords(records []season.TeamRecord, keep func(season.TeamRecord) bool) []season.TeamRecord {
	out := make([]season.TeamRecord, 0)
	for _, record := range records {
		if keep(record) {
			out = append(out, record)
		}
	}
	return out
}
