package httpapi

import "net/http"

type searchResponse struct {
	Success bool             `json:"success"`
	Query   string           `json:"query"`
	Type    string           `json:"type"`
	Results searchResultsDTO `json:"results"`
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Search")
	defer span.End()

	query, searchType, err := h.parseSearch(ctx, r.URL.Query())
	if err != nil {
		h.fail(ctx, w, "invalid search request", err)
		return
	}

	results, err := h.searchService.Search(ctx, query, searchType)
	if err != nil {
		h.fail(ctx, w, "search failed", err, "query", query, "type", string(searchType))
		return
	}

	writeJSON(ctx, w, http.StatusOK, searchResponse{
		Success: true,
		Query:   query,
		Type:    string(searchType),
		Results: searchResultsToDTO(results),
	})
}
