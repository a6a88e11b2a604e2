package memory

import "github.com/riskibarqy/big5-league-stats/internal/domain/season"

// SeedSeasons returns a small demo data set: the 2015/16 Premier League.
func SeedSeasons() []season.RecordSet {
	return []season.RecordSet{
		{SeasonID: season.Season2015, Records: premierLeague2015()},
	}
}

func premierLeague2015() []season.TeamRecord {
	type row struct {
		squad               string
		w, d, l, gf, ga, pts int
		scorer, keeper      string
		status              season.LeagueStatus
	}
	rows := []row{
		{"Leicester City", 23, 12, 3, 68, 36, 81, "Jamie Vardy - 24", "Kasper Schmeichel", season.StatusNormal},
		{"Arsenal", 20, 11, 7, 65, 36, 71, "Olivier Giroud - 16", "Petr Čech", season.StatusNormal},
		{"Tottenham", 19, 13, 6, 69, 35, 70, "Harry Kane - 25", "Hugo Lloris", season.StatusNormal},
		{"Manchester City", 19, 9, 10, 71, 41, 66, "Sergio Agüero - 24", "Joe Hart", season.StatusNormal},
		{"Manchester Utd", 19, 9, 10, 49, 35, 66, "Anthony Martial - 11", "David de Gea", season.StatusNormal},
		{"Southampton", 18, 9, 11, 59, 41, 63, "", "Fraser Forster", season.StatusNormal},
		{"West Ham", 16, 14, 8, 65, 51, 62, "", "Adrián", season.StatusNormal},
		{"Liverpool", 16, 12, 10, 63, 50, 60, "", "Simon Mignolet", season.StatusNormal},
		{"Stoke City", 14, 9, 15, 41, 55, 51, "", "Jack Butland", season.StatusNormal},
		{"Chelsea", 12, 14, 12, 59, 53, 50, "Diego Costa - 12", "Thibaut Courtois", season.StatusNormal},
		{"Everton", 11, 14, 13, 59, 55, 47, "Romelu Lukaku - 18", "Tim Howard", season.StatusNormal},
		{"Swansea City", 12, 11, 15, 42, 52, 47, "", "Łukasz Fabiański", season.StatusNormal},
		{"Watford", 12, 9, 17, 40, 50, 45, "Odion Ighalo - 15", "Heurelho Gomes", season.StatusNormal},
		{"West Brom", 10, 13, 15, 34, 48, 43, "", "Ben Foster", season.StatusNormal},
		{"Crystal Palace", 11, 9, 18, 39, 51, 42, "", "Wayne Hennessey", season.StatusNormal},
		{"Bournemouth", 11, 9, 18, 45, 67, 42, "", "Artur Boruc", season.StatusNormal},
		{"Sunderland", 9, 12, 17, 48, 62, 39, "Jermain Defoe - 15", "Vito Mannone", season.StatusNormal},
		{"Newcastle Utd", 9, 10, 19, 44, 65, 37, "Georginio Wijnaldum - 11", "Rob Elliot", season.StatusRelegated},
		{"Norwich City", 9, 7, 22, 39, 67, 34, "", "John Ruddy", season.StatusRelegated},
		{"Aston Villa", 3, 8, 27, 27, 76, 17, "", "Brad Guzan", season.StatusRelegated},
	}

	out := make([]season.TeamRecord, 0, len(rows))
	for i, r := range rows {
		played := r.w + r.d + r.l
		out = append(out, season.TeamRecord{
			Squad:          r.squad,
			Country:        season.LeagueEngland.Country(),
			LeagueRank:     i + 1,
			MatchesPlayed:  played,
			Wins:           r.w,
			Draws:          r.d,
			Losses:         r.l,
			GoalsFor:       r.gf,
			GoalsAgainst:   r.ga,
			GoalDifference: r.gf - r.ga,
			Points:         r.pts,
			PointsPerGame:  float64(r.pts) / float64(played),
			TopScorer:      r.scorer,
			Goalkeeper:     r.keeper,
			LeagueStatus:   r.status,
		})
	}
	return out
}
