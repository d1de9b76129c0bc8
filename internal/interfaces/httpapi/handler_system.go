package httpapi

import (
	"net/http"
	"time"
)

type rootResponse struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

var endpointIndex = map[string]string{
	"health":        "/health",
	"leagues":       "/api/leagues",
	"seasons":       "/api/leagues/{league_id}/seasons",
	"matches":       "/api/matches",
	"match_details": "/api/matches/{match_id}",
	"standings":     "/api/standings/{league_id}/{season}",
	"teams":         "/api/teams",
	"team_stats":    "/api/teams/{team_id}/stats",
	"search":        "/api/search",
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, rootResponse{
		Name:        h.info.Name,
		Version:     h.info.Version,
		Status:      "online",
		Description: "Football match, league, standings and team data",
		Endpoints:   endpointIndex,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	report, err := h.healthService.Check(ctx)
	body := healthResponse{
		Status:    report.Status,
		Database:  report.Database,
		Timestamp: report.Timestamp.Format(time.RFC3339),
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "health check failed", "error", err)
		body.Error = msgServiceUnavailable
		writeJSON(ctx, w, http.StatusServiceUnavailable, body)
		return
	}

	writeJSON(ctx, w, http.StatusOK, body)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeJSON(ctx, w, http.StatusNotFound, errorEnvelope{Error: msgEndpointNotFound})
}
