package httpapi

import (
	"net/http"
	"strings"
)

type standingsResponse struct {
	Success  bool          `json:"success"`
	LeagueID string        `json:"league_id"`
	Season   string        `json:"season"`
	Count    int           `json:"count"`
	Data     []standingDTO `json:"data"`
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	season := strings.TrimSpace(r.PathValue("season"))

	items, err := h.standingService.ListStandings(ctx, leagueID, season)
	if err != nil {
		h.fail(ctx, w, "list standings failed", err, "league_id", leagueID, "season", season)
		return
	}

	data := mapSlice(items, standingToDTO)
	writeJSON(ctx, w, http.StatusOK, standingsResponse{
		Success:  true,
		LeagueID: leagueID,
		Season:   season,
		Count:    len(data),
		Data:     data,
	})
}
