package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter, err := h.parseListMatches(ctx, r.URL.Query())
	if err != nil {
		h.fail(ctx, w, "invalid list matches request", err, "query", r.URL.RawQuery)
		return
	}

	page, err := h.matchService.ListMatches(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, "league_id", filter.LeagueID, "season", filter.Season)
		return
	}

	writePage(ctx, w, mapSlice(page.Items, matchToDTO), page.Total, page.Limit, page.Offset)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	detail, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", matchID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataEnvelope{
		Success: true,
		Data:    matchDetailToDTO(detail),
	})
}
