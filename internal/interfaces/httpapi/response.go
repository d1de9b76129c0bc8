package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-data-api/internal/usecase"
)

const (
	msgInternalError      = "internal server error"
	msgServiceUnavailable = "service temporarily unavailable"
	msgEndpointNotFound   = "endpoint not found"
)

// errorEnvelope is shared by business errors, unknown routes and panics.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type listEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type pageEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Data    any  `json:"data"`
}

type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type mappedError struct {
	HTTPStatus int
	Message    string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		buf.Reset()
		_, _ = buf.WriteString(`{"success":false,"error":"` + msgInternalError + `"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeList[T any](ctx context.Context, w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Success: true,
		Count:   len(items),
		Data:    items,
	})
}

func writePage[T any](ctx context.Context, w http.ResponseWriter, items []T, total, limit, offset int) {
	if items == nil {
		items = []T{}
	}
	writeJSON(ctx, w, http.StatusOK, pageEnvelope{
		Success: true,
		Count:   len(items),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		Data:    items,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope{Error: mapped.Message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{Error: msgInternalError})
}

// mapError only echoes the error text for client errors; server side
// failures get a fixed message and the detail stays in the logs.
func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Message: msgServiceUnavailable}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Message: msgInternalError}
	}
}
