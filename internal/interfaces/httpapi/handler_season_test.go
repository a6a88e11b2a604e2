package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/big5-league-stats/internal/platform/logging"
	"github.com/riskibarqy/big5-league-stats/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.NewSeasonRepository(season.RecordSet{
		SeasonID: season.Season2015,
		Records:  memory.SeedSeasons()[0].Records,
	})
	logger := logging.NewNop()
	stats := usecase.NewSeasonStatsService(repo, 2, logger)

	return NewRouter(NewHandler(stats, logger), logger, RouterOptions{ServiceName: "big5-test"})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandler_CatalogRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons", "")
	require.Equal(t, http.StatusOK, rec.Code)
	seasons := decodeBody[[]seasonDTO](t, rec)
	require.Len(t, seasons.Data, 6)
	assert.Equal(t, "2015/16", seasons.Data[0].Label)
	assert.Equal(t, "2020/21", seasons.Data[5].Label)

	rec = doRequest(t, router, http.MethodGet, "/v1/leagues", "")
	require.Equal(t, http.StatusOK, rec.Code)
	leagues := decodeBody[[]leagueDTO](t, rec)
	require.Len(t, leagues.Data, 5)
	assert.Equal(t, "ENG", leagues.Data[0].Code)
}

func TestHandler_ListTeams(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/seasons/0/teams", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[[]teamDTO](t, rec)
	require.Len(t, body.Data, 20)
	assert.Equal(t, teamDTO{Name: "Arsenal", Slug: "arsenal"}, body.Data[0])
	for _, item := range body.Data {
		if item.Name == "Manchester Utd" {
			assert.Equal(t, "manchester-utd", item.Slug)
		}
	}
}

func TestHandler_GetLeagueTable(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/0/leagues/eng/table", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[leagueTableDTO](t, rec)
	require.Len(t, body.Data.Rows, 20)
	assert.Equal(t, "ENG", body.Data.Country)
	assert.Equal(t, "Leicester City", body.Data.Rows[0].Squad)
	assert.Equal(t, 81, body.Data.Rows[0].Points)
	for i, row := range body.Data.Rows {
		assert.Equal(t, i+1, row.LeagueRank)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/0/leagues/ESP/table", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[leagueTableDTO](t, rec).Data.Rows)

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/0/leagues/NED/table", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Outcomes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/0/champions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	champions := decodeBody[[]outcomeRowDTO](t, rec)
	require.Len(t, champions.Data, 1)
	assert.Equal(t, "Leicester City", champions.Data[0].Squad)
	assert.Equal(t, "ENG", champions.Data[0].Country)

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/0/relegated", "")
	require.Equal(t, http.StatusOK, rec.Code)
	relegated := decodeBody[[]outcomeRowDTO](t, rec)
	require.Len(t, relegated.Data, 3)
	assert.Equal(t, "Newcastle Utd", relegated.Data[0].Squad)
	assert.Equal(t, "Aston Villa", relegated.Data[2].Squad)
	for i := 1; i < len(relegated.Data); i++ {
		assert.GreaterOrEqual(t, relegated.Data[i-1].Points, relegated.Data[i].Points)
	}
}

func TestHandler_SeasonErrors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/abc/champions", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/3/summary", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/42/teams", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Summary(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/seasons/0/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[seasonSummaryDTO](t, rec)
	assert.Equal(t, "2015/16", body.Data.Season.Label)
	assert.Len(t, body.Data.Teams, 20)
	assert.Len(t, body.Data.Champions, 1)
	assert.Len(t, body.Data.Relegated, 3)
}

func TestHandler_CompareTeams(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("post body", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, router, http.MethodPost, "/v1/seasons/0/comparison", `{"teams":["Tottenham","Arsenal"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[comparisonDTO](t, rec)
		require.Len(t, body.Data.Axes, 8)
		require.Len(t, body.Data.Series, 2)
		assert.Equal(t, "Arsenal", body.Data.Series[0].Team)
		assert.Equal(t, "Tottenham", body.Data.Series[1].Team)
		for _, series := range body.Data.Series {
			require.Len(t, series.Values, 9)
			assert.Equal(t, series.Values[0], series.Values[8])
			assert.Equal(t, "Matches Played", series.Axes[8])
		}
	})

	t.Run("query form", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, router, http.MethodGet, "/v1/seasons/0/comparison?team=Arsenal,Chelsea&team=Everton", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[comparisonDTO](t, rec).Data.Series, 3)
	})

	t.Run("empty selection", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, router, http.MethodPost, "/v1/seasons/0/comparison", `{"teams":[]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody[comparisonDTO](t, rec).Data.Series)
	})

	t.Run("team outside season", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, router, http.MethodPost, "/v1/seasons/0/comparison", `{"teams":["Arsenal","Bayern Munich"]}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody[comparisonDTO](t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "teamNotInSeason", body.Error.Errors[0].Reason)
		assert.Empty(t, body.Data.Series)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, router, http.MethodPost, "/v1/seasons/0/comparison", `{"squads":["Arsenal"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ChampionsHistory(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/champions/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[championsHistoryDTO](t, rec)
	require.Len(t, body.Data.Seasons, 1)
	assert.Equal(t, 0, body.Data.Seasons[0].Season.ID)
	assert.Len(t, body.Data.Missing, 5)
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
