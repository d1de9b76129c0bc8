package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.Health)
	// Anything the mux cannot place gets the JSON 404 envelope.
	mux.HandleFunc("/", handler.NotFound)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDataRoutes(mux *http.ServeMux, handler *Handler) {
	registerLeagueRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	mux.HandleFunc("GET /api/search", handler.Search)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /api/leagues/{leagueID}/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /api/standings/{leagueID}/{season}", handler.GetStandings)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/matches/{matchID}", handler.GetMatch)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}/stats", handler.GetTeamStats)
}
