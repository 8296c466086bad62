package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/gridironhq/nfl-companion/internal/usecase"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeJSON buffers the encoded payload before touching the wire so an
// encoding failure never produces a half-written 200.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeData(ctx context.Context, w http.ResponseWriter, payload any) {
	writeJSON(ctx, w, http.StatusOK, payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status, message := mapError(err)
	writeJSON(ctx, w, status, errorBody{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "Server error"})
}

// mapError translates usecase sentinels onto the wire contract. Upstream
// exhaustion is the caller-visible 502; anything unrecognized is a 500.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "Upstream error"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
