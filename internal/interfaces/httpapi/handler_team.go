package httpapi

import (
	"net/http"
)

type teamStatsResponse struct {
	Success bool           `json:"success"`
	TeamID  int64          `json:"team_id"`
	Count   int            `json:"count"`
	Data    []teamStatsDTO `json:"data"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	filter, err := h.parseListTeams(ctx, r.URL.Query())
	if err != nil {
		h.fail(ctx, w, "invalid list teams request", err, "query", r.URL.RawQuery)
		return
	}

	page, err := h.teamService.ListTeams(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err, "league_id", filter.LeagueID, "season", filter.Season)
		return
	}

	writePage(ctx, w, mapSlice(page.Items, teamToDTO), page.Total, page.Limit, page.Offset)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	teamID, filter, err := h.parseTeamStats(ctx, r.PathValue("teamID"), r.URL.Query())
	if err != nil {
		h.fail(ctx, w, "invalid team stats request", err, "team_id", r.PathValue("teamID"))
		return
	}

	items, err := h.teamStatsService.GetTeamStats(ctx, teamID, filter)
	if err != nil {
		h.fail(ctx, w, "get team stats failed", err, "team_id", teamID)
		return
	}

	data := mapSlice(items, teamStatsToDTO)
	writeJSON(ctx, w, http.StatusOK, teamStatsResponse{
		Success: true,
		TeamID:  teamID,
		Count:   len(data),
		Data:    data,
	})
}
