package httpapi

import (
	"github.com/gosimple/slug"

	"github.com/riskibarqy/big5-league-stats/internal/analytics"
	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/usecase"
)

type compareTeamsRequest struct {
	Teams []string `json:"teams" validate:"max=40,dive,max=100"`
}

type seasonDTO struct {
	ID        int    `json:"id"`
	StartYear int    `json:"start_year,omitempty"`
	Label     string `json:"label"`
}

type leagueDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type teamDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// tableRowDTO carries the columns shown in a league table.
type tableRowDTO struct {
	LeagueRank     int    `json:"league_rank"`
	Squad          string `json:"squad"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type leagueTableDTO struct {
	SeasonID int           `json:"season_id"`
	Country  string        `json:"country"`
	Rows     []tableRowDTO `json:"rows"`
}

type outcomeRowDTO struct {
	Squad         string `json:"squad"`
	Points        int    `json:"points"`
	Country       string `json:"country"`
	TopTeamScorer string `json:"top_team_scorer"`
	Goalkeeper    string `json:"goalkeeper"`
}

type seasonSummaryDTO struct {
	Season    seasonDTO       `json:"season"`
	Teams     []teamDTO       `json:"teams"`
	Champions []outcomeRowDTO `json:"champions"`
	Relegated []outcomeRowDTO `json:"relegated"`
}

type radarSeriesDTO struct {
	Team   string   `json:"team"`
	Values []int    `json:"values"`
	Axes   []string `json:"axes"`
}

type comparisonDTO struct {
	SeasonID int              `json:"season_id"`
	Axes     []string         `json:"axes"`
	Series   []radarSeriesDTO `json:"series"`
}

type seasonChampionsDTO struct {
	Season    seasonDTO       `json:"season"`
	Champions []outcomeRowDTO `json:"champions"`
}

type championsHistoryDTO struct {
	Seasons []seasonChampionsDTO `json:"seasons"`
	Missing []seasonDTO          `json:"missing"`
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{ID: int(v.ID), StartYear: v.StartYear, Label: v.Label}
}

func teamsToDTO(names []string) []teamDTO {
	out := make([]teamDTO, 0, len(names))
	for _, name := range names {
		out = append(out, teamDTO{Name: name, Slug: slug.Make(name)})
	}
	return out
}

func leagueTableToDTO(id season.SeasonID, table analytics.LeagueTable) leagueTableDTO {
	rows := make([]tableRowDTO, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, tableRowDTO{
			LeagueRank:     r.LeagueRank,
			Squad:          r.Squad,
			MatchesPlayed:  r.MatchesPlayed,
			Wins:           r.Wins,
			Draws:          r.Draws,
			Losses:         r.Losses,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			GoalDifference: r.GoalDifference,
			Points:         r.Points,
		})
	}

	return leagueTableDTO{SeasonID: int(id), Country: table.Country, Rows: rows}
}

func outcomeToDTO(set analytics.OutcomeSet) []outcomeRowDTO {
	out := make([]outcomeRowDTO, 0, len(set))
	for _, r := range set {
		out = append(out, outcomeRowDTO{
			Squad:         r.Squad,
			Points:        r.Points,
			Country:       r.Country,
			TopTeamScorer: r.TopScorer,
			Goalkeeper:    r.Goalkeeper,
		})
	}
	return out
}

func comparisonToDTO(id season.SeasonID, set analytics.ComparisonSet) comparisonDTO {
	series := make([]radarSeriesDTO, 0, len(set))
	for _, v := range set {
		values, axes := v.Ring()
		series = append(series, radarSeriesDTO{Team: v.Team, Values: values, Axes: axes})
	}

	return comparisonDTO{
		SeasonID: int(id),
		Axes:     analytics.AxisLabels[:],
		Series:   series,
	}
}

func championsHistoryToDTO(history usecase.ChampionsHistory) championsHistoryDTO {
	out := championsHistoryDTO{
		Seasons: make([]seasonChampionsDTO, 0, len(history.Seasons)),
		Missing: make([]seasonDTO, 0, len(history.Missing)),
	}
	for _, item := range history.Seasons {
		out.Seasons = append(out.Seasons, seasonChampionsDTO{
			Season:    seasonToDTO(item.Season),
			Champions: outcomeToDTO(item.Champions),
		})
	}
	for _, item := range history.Missing {
		out.Missing = append(out.Missing, seasonToDTO(item))
	}
	return out
}
