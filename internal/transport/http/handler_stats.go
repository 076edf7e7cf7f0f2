package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apphistory "tarot345/internal/app/history"
)

type StatsHandlers struct {
	svc *apphistory.Service
}

func NewStatsHandlers(svc *apphistory.Service) *StatsHandlers {
	return &StatsHandlers{svc: svc}
}

func (h *StatsHandlers) Report() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		report, err := h.svc.Statistics(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		metricStatsDurationMS.Set(time.Since(start).Milliseconds())
		writeJSON(w, http.StatusOK, report)
	}
}

func (h *StatsHandlers) Player() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.PlayerStatistics(r.Context(), chi.URLParam(r, "player_id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *StatsHandlers) Game() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.GameStatistics(r.Context(), chi.URLParam(r, "game_id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
