package httpapi

import (
	"net/http"
	"strings"
)

type seasonsResponse struct {
	Success  bool        `json:"success"`
	LeagueID string      `json:"league_id"`
	Count    int         `json:"count"`
	Data     []seasonDTO `json:"data"`
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	country := r.URL.Query().Get("country")
	leagues, err := h.leagueService.ListLeagues(ctx, country)
	if err != nil {
		h.fail(ctx, w, "list leagues failed", err, "country", country)
		return
	}

	writeList(ctx, w, mapSlice(leagues, leagueToDTO))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	seasons, err := h.leagueService.ListSeasons(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "list seasons failed", err, "league_id", leagueID)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, season := range seasons {
		items = append(items, seasonDTO{Season: season})
	}

	writeJSON(ctx, w, http.StatusOK, seasonsResponse{
		Success:  true,
		LeagueID: leagueID,
		Count:    len(items),
		Data:     items,
	})
}
