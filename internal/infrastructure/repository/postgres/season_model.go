package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

const teamSeasonRecordsTable = "team_season_records"

type teamSeasonRecordTableModel struct {
	ID             int64           `db:"id"`
	SeasonID       int             `db:"season_id"`
	RowOrder       int             `db:"row_order"`
	BigFiveRank    sql.NullInt64   `db:"big_five_rank"`
	Squad          string          `db:"squad"`
	Country        string          `db:"country"`
	LeagueRank     int             `db:"league_rank"`
	MatchesPlayed  int             `db:"matches_played"`
	Wins           int             `db:"wins"`
	Draws          int             `db:"draws"`
	Losses         int             `db:"losses"`
	GoalsFor       int             `db:"goals_for"`
	GoalsAgainst   int             `db:"goals_against"`
	GoalDifference int             `db:"goal_difference"`
	Points         int             `db:"points"`
	PointsPerGame  sql.NullFloat64 `db:"points_per_game"`
	Attendance     sql.NullInt64   `db:"attendance"`
	TopTeamScorer  string          `db:"top_team_scorer"`
	Goalkeeper     string          `db:"goalkeeper"`
	LeagueStatus   string          `db:"league_status"`
	CreatedAt      time.Time       `db:"created_at"`
}

// insertColumns is the COPY column list; order matches insertValues.
var insertColumns = []string{
	"season_id",
	"row_order",
	"big_five_rank",
	"squad",
	"country",
	"league_rank",
	"matches_played",
	"wins",
	"draws",
	"losses",
	"goals_for",
	"goals_against",
	"goal_difference",
	"points",
	"points_per_game",
	"attendance",
	"top_team_scorer",
	"goalkeeper",
	"league_status",
}

func (m teamSeasonRecordTableModel) toDomain() season.TeamRecord {
	return season.TeamRecord{
		BigFiveRank:    int(m.BigFiveRank.Int64),
		Squad:          m.Squad,
		Country:        m.Country,
		LeagueRank:     m.LeagueRank,
		MatchesPlayed:  m.MatchesPlayed,
		Wins:           m.Wins,
		Draws:          m.Draws,
		Losses:         m.Losses,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
		Points:         m.Points,
		PointsPerGame:  m.PointsPerGame.Float64,
		Attendance:     int(m.Attendance.Int64),
		TopScorer:      m.TopTeamScorer,
		Goalkeeper:     m.Goalkeeper,
		LeagueStatus:   season.ParseLeagueStatus(m.LeagueStatus),
	}
}

func insertValues(id season.SeasonID, order int, r season.TeamRecord) []any {
	return []any{
		int(id),
		order,
		nullInt(r.BigFiveRank),
		r.Squad,
		r.Country,
		r.LeagueRank,
		r.MatchesPlayed,
		r.Wins,
		r.Draws,
		r.Losses,
		r.GoalsFor,
		r.GoalsAgainst,
		r.GoalDifference,
		r.Points,
		r.PointsPerGame,
		nullInt(r.Attendance),
		r.TopScorer,
		r.Goalkeeper,
		string(r.LeagueStatus),
	}
}

// nullInt stores zero as NULL; the source files leave these cells blank.
func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}
