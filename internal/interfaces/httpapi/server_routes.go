package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/champions/history", handler.ChampionsHistory)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/leagues/{league}/table", handler.GetLeagueTable)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/champions", handler.ListChampions)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/relegated", handler.ListRelegated)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/summary", handler.GetSeasonSummary)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/comparison", handler.CompareTeamsByQuery)
	mux.HandleFunc("POST /v1/seasons/{seasonID}/comparison", handler.CompareTeams)
}
