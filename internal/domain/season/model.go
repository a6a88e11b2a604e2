package season

import "strings"

// LeagueStatus is the end-of-season flag carried by a team record.
type LeagueStatus string

const (
	StatusNormal    LeagueStatus = "Normal"
	StatusRelegated LeagueStatus = "Relegated"
)

// ParseLeagueStatus keeps unknown values verbatim; an empty cell reads as Normal.
func ParseLeagueStatus(raw string) LeagueStatus {
	value := strings.TrimSpace(raw)
	if value == "" {
		return StatusNormal
	}
	if strings.EqualFold(value, string(StatusRelegated)) {
		return StatusRelegated
	}
	if strings.EqualFold(value, string(StatusNormal)) {
		return StatusNormal
	}
	return LeagueStatus(value)
}

// TeamRecord is one team's final line for one season.
type TeamRecord struct {
	BigFiveRank    int
	Squad          string
	Country        string
	LeagueRank     int
	MatchesPlayed  int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	PointsPerGame  float64
	Attendance     int
	TopScorer      string
	Goalkeeper     string
	LeagueStatus   LeagueStatus
}

func (r TeamRecord) IsChampion() bool {
	return r.LeagueRank == 1
}

func (r TeamRecord) IsRelegated() bool {
	return r.LeagueStatus == StatusRelegated
}

// RecordSet is every team record of one season, in source order.
// Callers treat it as read-only.
type RecordSet struct {
	SeasonID SeasonID
	Records  []TeamRecord
}

func (s RecordSet) Len() int {
	return len(s.Records)
}
