package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/standings", handler.Standings)
	mux.HandleFunc("GET /api/schedule", handler.Schedule)
	mux.HandleFunc("GET /api/playoffs", handler.Playoffs)
	mux.HandleFunc("GET /api/leaderboard", handler.Leaderboard)
}
