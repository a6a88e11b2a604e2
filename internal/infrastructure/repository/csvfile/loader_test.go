package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
)

const sampleCSV = `Rk,Squad,Country,LgRk,MP,W,D,L,GF,GA,GD,Pts,Pts/G,Attendance,Top Team Scorer,Goalkeeper,League_Status
1,Liverpool,ENG,1,38,32,3,3,85,33,52,99,2.61,"53,143",Mohamed Salah - 19,Alisson,Normal
2,Huddersfield,ENG,18,38,3,7,28,22,76,-54,16,0.42,"24,011",Karlan Grant - 4,Jonas Lössl,Relegated

3,Bayern Munich,GER,1,34,26,4,4,100,32,68,82,2.41,,Robert Lewandowski - 34,Manuel Neuer,
`

func TestParse_MapsColumnsByHeader(t *testing.T) {
	t.Parallel()

	records, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	liverpool := records[0]
	assert.Equal(t, season.TeamRecord{
		BigFiveRank:    1,
		Squad:          "Liverpool",
		Country:        "ENG",
		LeagueRank:     1,
		MatchesPlayed:  38,
		Wins:           32,
		Draws:          3,
		Losses:         3,
		GoalsFor:       85,
		GoalsAgainst:   33,
		GoalDifference: 52,
		Points:         99,
		PointsPerGame:  2.61,
		Attendance:     53143,
		TopScorer:      "Mohamed Salah - 19",
		Goalkeeper:     "Alisson",
		LeagueStatus:   season.StatusNormal,
	}, liverpool)

	assert.Equal(t, season.StatusRelegated, records[1].LeagueStatus)
	assert.Equal(t, -54, records[1].GoalDifference)
	assert.Equal(t, season.StatusNormal, records[2].LeagueStatus, "empty status reads as Normal")
	assert.Zero(t, records[2].Attendance)
}

func TestParse_PointsPerMatchAlias(t *testing.T) {
	t.Parallel()

	input := "Squad,Country,LgRk,MP,W,D,L,GF,GA,GD,Pts,Pts/MP\nLeicester City,ENG,1,38,23,12,3,68,36,32,81,2.13\n"
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 2.13, records[0].PointsPerGame, 1e-9)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":          "",
		"missing column": "Squad,Country\nLiverpool,ENG\n",
		"bad integer":    "Squad,Country,LgRk,MP,W,D,L,GF,GA,GD,Pts\nLiverpool,ENG,first,38,1,1,1,1,1,0,4\n",
		"empty squad":    "Squad,Country,LgRk,MP,W,D,L,GF,GA,GD,Pts\n,ENG,1,38,1,1,1,1,1,0,4\n",
	}
	for name, input := range cases {
		_, err := Parse(strings.NewReader(input))
		assert.Error(t, err, name)
	}
}

func TestLoader_LoadSeason(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Big_5_0.csv"), []byte(sampleCSV), 0o600))
	loader := NewLoader(dir, "Big_5_%d.csv")

	set, err := loader.LoadSeason(context.Background(), season.Season2015)
	require.NoError(t, err)
	assert.Equal(t, season.Season2015, set.SeasonID)
	assert.Equal(t, 3, set.Len())
}

func TestLoader_DataUnavailable(t *testing.T) {
	t.Parallel()

	loader := NewLoader(t.TempDir(), "Big_5_%d.csv")

	_, err := loader.LoadSeason(context.Background(), season.Season2016)
	require.Error(t, err)
	assert.True(t, errors.Is(err, season.ErrDataUnavailable), "missing file: %v", err)

	_, err = loader.LoadSeason(context.Background(), season.SeasonID(999))
	require.Error(t, err)
	assert.True(t, errors.Is(err, season.ErrDataUnavailable), "unknown season: %v", err)
}

func TestLoader_MalformedFileIsNotDataUnavailable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Big_5_1.csv"), []byte("Squad\nArsenal\n"), 0o600))

	_, err := NewLoader(dir, "Big_5_%d.csv").LoadSeason(context.Background(), season.Season2016)
	require.Error(t, err)
	assert.False(t, errors.Is(err, season.ErrDataUnavailable))
}
