package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/big5-league-stats/internal/analytics"
	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
)

type mockSeasonLoader struct {
	mock.Mock
}

func (m *mockSeasonLoader) LoadSeason(ctx context.Context, id season.SeasonID) (season.RecordSet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(season.RecordSet), args.Error(1)
}

func statsRecord(squad, country string, rank, points int, status season.LeagueStatus) season.TeamRecord {
	return season.TeamRecord{
		Squad:         squad,
		Country:       country,
		LeagueRank:    rank,
		MatchesPlayed: 38,
		Wins:          points / 3,
		Draws:         points % 3,
		Points:        points,
		TopScorer:     squad + " striker - 20",
		Goalkeeper:    squad + " keeper",
		LeagueStatus:  status,
	}
}

func statsFixture(id season.SeasonID) season.RecordSet {
	return season.RecordSet{
		SeasonID: id,
		Records: []season.TeamRecord{
			statsRecord("Leicester City", "ENG", 1, 81, season.StatusNormal),
			statsRecord("Aston Villa", "ENG", 3, 17, season.StatusRelegated),
			statsRecord("Arsenal", "ENG", 2, 71, season.StatusNormal),
			statsRecord("Bayern Munich", "GER", 1, 88, season.StatusNormal),
			statsRecord("Hannover 96", "GER", 2, 25, season.StatusRelegated),
		},
	}
}

func newStatsService(sets ...season.RecordSet) *SeasonStatsService {
	return NewSeasonStatsService(memory.NewSeasonRepository(sets...), 2, logging.NewNop())
}

func TestSeasonStatsService_ListTeams(t *testing.T) {
	t.Parallel()

	svc := newStatsService(statsFixture(season.Season2015))

	teams, err := svc.ListTeams(context.Background(), season.Season2015)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arsenal", "Aston Villa", "Bayern Munich", "Hannover 96", "Leicester City"}, teams)
}

func TestSeasonStatsService_LeagueTable(t *testing.T) {
	t.Parallel()

	svc := newStatsService(statsFixture(season.Season2015))

	t.Run("default league", func(t *testing.T) {
		t.Parallel()

		table, err := svc.LeagueTable(context.Background(), season.Season2015, "")
		require.NoError(t, err)
		assert.Equal(t, "ENG", table.Country)
		require.Len(t, table.Rows, 3)
		assert.Equal(t, "Leicester City", table.Rows[0].Squad)
		assert.Equal(t, "Arsenal", table.Rows[1].Squad)
		assert.Equal(t, "Aston Villa", table.Rows[2].Squad)
	})

	t.Run("case insensitive league", func(t *testing.T) {
		t.Parallel()

		table, err := svc.LeagueTable(context.Background(), season.Season2015, "ger")
		require.NoError(t, err)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "Bayern Munich", table.Rows[0].Squad)
	})

	t.Run("league without rows", func(t *testing.T) {
		t.Parallel()

		table, err := svc.LeagueTable(context.Background(), season.Season2015, "FRA")
		require.NoError(t, err)
		assert.Empty(t, table.Rows)
	})

	t.Run("unknown league", func(t *testing.T) {
		t.Parallel()

		_, err := svc.LeagueTable(context.Background(), season.Season2015, "NED")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSeasonStatsService_Outcomes(t *testing.T) {
	t.Parallel()

	svc := newStatsService(statsFixture(season.Season2015))
	ctx := context.Background()

	champions, err := svc.Champions(ctx, season.Season2015)
	require.NoError(t, err)
	require.Len(t, champions, 2)
	assert.Equal(t, "Bayern Munich", champions[0].Squad)
	assert.Equal(t, "Leicester City", champions[1].Squad)

	relegated, err := svc.Relegated(ctx, season.Season2015)
	require.NoError(t, err)
	require.Len(t, relegated, 2)
	assert.Equal(t, "Hannover 96", relegated[0].Squad)
	assert.Equal(t, "Aston Villa", relegated[1].Squad)
}

func TestSeasonStatsService_Summary(t *testing.T) {
	t.Parallel()

	svc := newStatsService(statsFixture(season.Season2016))

	summary, err := svc.Summary(context.Background(), season.Season2016)
	require.NoError(t, err)
	assert.Equal(t, "2016/17", summary.Season.Label)
	assert.Len(t, summary.Teams, 5)
	assert.Len(t, summary.Champions, 2)
	assert.Len(t, summary.Relegated, 2)
}

func TestSeasonStatsService_Compare(t *testing.T) {
	t.Parallel()

	svc := newStatsService(statsFixture(season.Season2015))

	t.Run("trims and orders names", func(t *testing.T) {
		t.Parallel()

		out, err := svc.Compare(context.Background(), season.Season2015, []string{" Leicester City ", "", "Arsenal"})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Arsenal", out[0].Team)
		assert.Equal(t, "Leicester City", out[1].Team)
	})

	t.Run("missing team", func(t *testing.T) {
		t.Parallel()

		out, err := svc.Compare(context.Background(), season.Season2015, []string{"Arsenal", "Ajax"})
		require.ErrorIs(t, err, analytics.ErrMembership)
		assert.Empty(t, out)

		var membershipErr *analytics.MembershipError
		require.ErrorAs(t, err, &membershipErr)
		assert.Equal(t, []string{"Ajax"}, membershipErr.Missing)
		assert.Equal(t, analytics.MembershipMessage, err.Error())
	})
}

func TestSeasonStatsService_LoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("data unavailable passes through", func(t *testing.T) {
		t.Parallel()

		svc := newStatsService()
		_, err := svc.Champions(context.Background(), season.Season2019)
		require.ErrorIs(t, err, season.ErrDataUnavailable)
		assert.NotErrorIs(t, err, ErrDependencyUnavailable)
	})

	t.Run("other failures are dependency errors", func(t *testing.T) {
		t.Parallel()

		loader := &mockSeasonLoader{}
		loader.On("LoadSeason", mock.Anything, season.Season2017).
			Return(season.RecordSet{}, errors.New("connection refused")).
			Once()

		svc := NewSeasonStatsService(loader, 1, logging.NewNop())
		_, err := svc.ListTeams(context.Background(), season.Season2017)
		require.ErrorIs(t, err, ErrDependencyUnavailable)
		loader.AssertExpectations(t)
	})
}

func TestSeasonStatsService_ChampionsHistory(t *testing.T) {
	t.Parallel()

	t.Run("skips seasons without data", func(t *testing.T) {
		t.Parallel()

		svc := newStatsService(statsFixture(season.Season2018), statsFixture(season.Season2015))

		history, err := svc.ChampionsHistory(context.Background())
		require.NoError(t, err)
		require.Len(t, history.Seasons, 2)
		assert.Equal(t, season.Season2015, history.Seasons[0].Season.ID)
		assert.Equal(t, season.Season2018, history.Seasons[1].Season.ID)
		assert.Len(t, history.Seasons[0].Champions, 2)

		missing := make([]season.SeasonID, 0, len(history.Missing))
		for _, item := range history.Missing {
			missing = append(missing, item.ID)
		}
		assert.Equal(t, []season.SeasonID{season.Season2016, season.Season2017, season.Season2019, season.Season2020}, missing)
	})

	t.Run("loader failure aborts", func(t *testing.T) {
		t.Parallel()

		loader := &mockSeasonLoader{}
		loader.On("LoadSeason", mock.Anything, season.Season2017).
			Return(season.RecordSet{}, errors.New("disk failure"))
		loader.On("LoadSeason", mock.Anything, mock.Anything).
			Return(statsFixture(season.Season2015), nil).
			Maybe()

		svc := NewSeasonStatsService(loader, 3, logging.NewNop())
		_, err := svc.ChampionsHistory(context.Background())
		require.ErrorIs(t, err, ErrDependencyUnavailable)
	})
}
