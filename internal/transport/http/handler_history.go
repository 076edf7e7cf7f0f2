package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apphistory "tarot345/internal/app/history"
	"tarot345/internal/game"
)

type HistoryHandlers struct {
	svc *apphistory.Service
}

func NewHistoryHandlers(svc *apphistory.Service) *HistoryHandlers {
	return &HistoryHandlers{svc: svc}
}

type playerBody struct {
	Name string `json:"name"`
}

type gameBody struct {
	Players []string `json:"players"`
}

func (h *HistoryHandlers) Players() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.ListPlayers(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *HistoryHandlers) CreatePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body playerBody
		if err := decodeJSON(r, &body); err != nil {
			writeDecodeError(w, err)
			return
		}
		p, err := h.svc.CreatePlayer(r.Context(), body.Name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func (h *HistoryHandlers) RenamePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body playerBody
		if err := decodeJSON(r, &body); err != nil {
			writeDecodeError(w, err)
			return
		}
		p, err := h.svc.RenamePlayer(r.Context(), chi.URLParam(r, "player_id"), body.Name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func (h *HistoryHandlers) DeletePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.DeletePlayer(r.Context(), chi.URLParam(r, "player_id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *HistoryHandlers) Games() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.ListGames(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *HistoryHandlers) CreateGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body gameBody
		if err := decodeJSON(r, &body); err != nil {
			writeDecodeError(w, err)
			return
		}
		resp, err := h.svc.CreateGame(r.Context(), body.Players)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func (h *HistoryHandlers) Game() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.GetGame(r.Context(), chi.URLParam(r, "game_id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *HistoryHandlers) DeleteGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.DeleteGame(r.Context(), chi.URLParam(r, "game_id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *HistoryHandlers) RecordHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in apphistory.HandInput
		if err := decodeJSON(r, &in); err != nil {
			writeDecodeError(w, err)
			return
		}
		hand, err := h.svc.RecordHand(r.Context(), chi.URLParam(r, "game_id"), in)
		if err != nil {
			metricHandsRejected.Add(1)
			writeServiceError(w, r, err)
			return
		}
		metricHandsRecorded.Add(1)
		writeJSON(w, http.StatusCreated, hand)
	}
}

func (h *HistoryHandlers) UpdateHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in apphistory.HandInput
		if err := decodeJSON(r, &in); err != nil {
			writeDecodeError(w, err)
			return
		}
		hand, err := h.svc.UpdateHand(r.Context(), chi.URLParam(r, "game_id"), chi.URLParam(r, "hand_id"), in)
		if err != nil {
			metricHandsRejected.Add(1)
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, hand)
	}
}

func (h *HistoryHandlers) DeleteHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.DeleteHand(r.Context(), chi.URLParam(r, "game_id"), chi.URLParam(r, "hand_id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *HistoryHandlers) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hist, err := h.svc.ExportHistory(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, hist)
	}
}

func (h *HistoryHandlers) Import() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var hist game.History
		if err := decodeJSON(r, &hist); err != nil {
			writeDecodeError(w, err)
			return
		}
		resp, err := h.svc.ImportHistory(r.Context(), hist)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		metricHistoryImports.Add(1)
		writeJSON(w, http.StatusOK, resp)
	}
}
