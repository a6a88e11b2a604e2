package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/big5-league-stats/internal/domain/season"
	"github.com/riskibarqy/big5-league-stats/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons := h.stats.ListSeasons(ctx)
	items := make([]seasonDTO, 0, len(seasons))
	for _, item := range seasons {
		items = append(items, seasonToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.stats.ListLeagues(ctx)
	items := make([]leagueDTO, 0, len(leagues))
	for _, item := range leagues {
		items = append(items, leagueDTO{Code: string(item), Name: item.Name()})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	seasonID, err := seasonIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int("season.id", int(seasonID)))

	teams, err := h.stats.ListTeams(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "season_id", int(seasonID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueTable")
	defer span.End()

	seasonID, err := seasonIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	league := r.PathValue("league")
	span.SetAttributes(attribute.Int("season.id", int(seasonID)), attribute.String("league", league))

	table, err := h.stats.LeagueTable(ctx, seasonID, league)
	if err != nil {
		h.logger.WarnContext(ctx, "get league table failed", "season_id", int(seasonID), "league", league, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueTableToDTO(seasonID, table))
}

func (h *Handler) ListChampions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampions")
	defer span.End()

	seasonID, err := seasonIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	champions, err := h.stats.Champions(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list champions failed", "season_id", int(seasonID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcomeToDTO(champions))
}

func (h *Handler) ListRelegated(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRelegated")
	defer span.End()

	seasonID, err := seasonIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	relegated, err := h.stats.Relegated(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list relegated failed", "season_id", int(seasonID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcomeToDTO(relegated))
}

func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSummary")
	defer span.End()

	seasonID, err := seasonIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.stats.Summary(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season summary failed", "season_id", int(seasonID), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummaryDTO{
		Season:    seasonToDTO(summary.Season),
		Teams:     teamsToDTO(summary.Teams),
		Champions: outcomeToDTO(summary.Champions),
		Relegated: outcomeToDTO(summary.Relegated),
	})
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	seasonID, err := seasonIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req compareTeamsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.compare(w, r.WithContext(ctx), seasonID, req.Teams)
}

func (h *Handler) CompareTeamsByQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeamsByQuery")
	defer span.End()

	seasonID, err := seasonIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := compareTeamsRequest{Teams: teamsFromQuery(r)}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.compare(w, r.WithContext(ctx), seasonID, req.Teams)
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request, seasonID season.SeasonID, teams []string) {
	ctx := r.Context()

	set, err := h.stats.Compare(ctx, seasonID, teams)
	if err != nil {
		h.logger.WarnContext(ctx, "compare teams failed", "season_id", int(seasonID), "teams", teams, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(seasonID, set))
}

func (h *Handler) ChampionsHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChampionsHistory")
	defer span.End()

	history, err := h.stats.ChampionsHistory(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "champions history failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championsHistoryToDTO(history))
}
