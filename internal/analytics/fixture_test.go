package analytics

import "github.com/riskibarqy/big5-league-stats/internal/domain/season"

func record(squad, country string, rank, points int, status season.LeagueStatus) season.TeamRecord {
	return season.TeamRecord{
		Squad:          squad,
		Country:        country,
		LeagueRank:     rank,
		MatchesPlayed:  38,
		Wins:           points / 3,
		Draws:          points % 3,
		Losses:         38 - points/3 - points%3,
		GoalsFor:       rank + 40,
		GoalsAgainst:   rank + 20,
		GoalDifference: 20,
		Points:         points,
		LeagueStatus:   status,
	}
}

func sampleSeason() season.RecordSet {
	return season.RecordSet{
		SeasonID: season.Season2015,
		Records: []season.TeamRecord{
			record("Huddersfield", "ENG", 3, 16, season.StatusRelegated),
			record("Liverpool", "ENG", 1, 99, season.StatusNormal),
			record("Bayern Munich", "GER", 1, 82, season.StatusNormal),
			record("Arsenal", "ENG", 2, 56, season.StatusNormal),
			record("Paderborn", "GER", 3, 20, season.StatusRelegated),
			record("Dortmund", "GER", 2, 69, season.StatusNormal),
			record("Juventus", "ITA", 1, 82, season.StatusNormal),
			record("Lecce", "ITA", 2, 35, season.StatusRelegated),
		},
	}
}
