package httptransport

import (
	"net/http"

	appscoring "tarot345/internal/app/scoring"
)

// ScoreHandlers serve the stateless engine: no stored game is involved.
type ScoreHandlers struct {
	svc *appscoring.Service
}

func NewScoreHandlers(svc *appscoring.Service) *ScoreHandlers {
	return &ScoreHandlers{svc: svc}
}

func (h *ScoreHandlers) Rules() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, h.svc.Rules())
	}
}

func (h *ScoreHandlers) Compute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appscoring.HandRequest
		if err := decodeJSON(r, &req); err != nil {
			writeDecodeError(w, err)
			return
		}
		metricScoreRequests.Add(1)
		resp, err := h.svc.Score(req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *ScoreHandlers) Verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appscoring.VerifyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeDecodeError(w, err)
			return
		}
		metricScoreRequests.Add(1)
		resp, err := h.svc.Verify(req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
