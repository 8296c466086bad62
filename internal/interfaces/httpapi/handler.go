package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gridironhq/nfl-companion/internal/usecase"
)

type Handler struct {
	standingsService   *usecase.StandingsService
	scheduleService    *usecase.ScheduleService
	playoffService     *usecase.PlayoffService
	leaderboardService *usecase.LeaderboardService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	scheduleService *usecase.ScheduleService,
	playoffService *usecase.PlayoffService,
	leaderboardService *usecase.LeaderboardService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		standingsService:   standingsService,
		scheduleService:    scheduleService,
		playoffService:     playoffService,
		leaderboardService: leaderboardService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeData(ctx, w, map[string]string{"status": "ok"})
}

type standingsQuery struct {
	Season int `validate:"gte=0,lte=9999"`
}

func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Standings")
	defer span.End()

	query := standingsQuery{Season: parseQueryInt(r, "season")}
	if err := h.validator.StructCtx(ctx, query); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{Error: "Invalid request"})
		return
	}

	table, err := h.standingsService.Get(ctx, query.Season)
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "season", query.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, standingsToDTO(table))
}

type scheduleQuery struct {
	Phase string `validate:"omitempty,oneof=regular postseason current"`
	Week  int    `validate:"gte=0,lte=18"`
}

func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Schedule")
	defer span.End()

	query := scheduleQuery{
		Phase: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("phase"))),
		Week:  parseQueryInt(r, "week"),
	}
	if err := h.validator.StructCtx(ctx, query); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{Error: "Invalid request"})
		return
	}

	result, err := h.scheduleService.Get(ctx, query.Phase, query.Week)
	if err != nil {
		h.logger.ErrorContext(ctx, "get schedule failed", "phase", query.Phase, "week", query.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, scheduleToDTO(result))
}

type playoffsQuery struct {
	Season int `validate:"gte=0,lte=9999"`
}

func (h *Handler) Playoffs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Playoffs")
	defer span.End()

	query := playoffsQuery{Season: parseQueryInt(r, "season")}
	if err := h.validator.StructCtx(ctx, query); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{Error: "Invalid request"})
		return
	}
	refresh := parseQueryBool(r, "refresh")

	summary, err := h.playoffService.Get(ctx, query.Season, refresh)
	if err != nil {
		h.logger.ErrorContext(ctx, "get playoffs failed", "season", query.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, playoffsToDTO(summary))
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Leaderboard")
	defer span.End()

	query := standingsQuery{Season: parseQueryInt(r, "season")}
	if err := h.validator.StructCtx(ctx, query); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{Error: "Invalid request"})
		return
	}

	board, err := h.leaderboardService.Get(ctx, query.Season)
	if err != nil {
		h.logger.ErrorContext(ctx, "get leaderboard failed", "season", query.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, leaderboardToDTO(board))
}

func parseQueryInt(r *http.Request, key string) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func parseQueryBool(r *http.Request, key string) bool {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	return raw == "true" || raw == "1" || raw == "yes"
}

func formatTimestamp(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}
