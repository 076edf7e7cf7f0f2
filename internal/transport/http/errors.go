package httptransport

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	apphistory "tarot345/internal/app/history"
	appscoring "tarot345/internal/app/scoring"
)

// writeServiceError maps an app-layer error onto a status and an error code.
// Client errors carry the error text so a rejected hand names its field.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, appscoring.ErrInvalidRequest), errors.Is(err, apphistory.ErrInvalidRequest):
		status, code = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, appscoring.ErrInvalidHand), errors.Is(err, apphistory.ErrInvalidHand):
		status, code = http.StatusUnprocessableEntity, "invalid_hand"
	case errors.Is(err, apphistory.ErrScoresMismatch):
		status, code = http.StatusUnprocessableEntity, "scores_mismatch"
	case errors.Is(err, apphistory.ErrPlayerNotFound):
		status, code = http.StatusNotFound, "player_not_found"
	case errors.Is(err, apphistory.ErrGameNotFound):
		status, code = http.StatusNotFound, "game_not_found"
	case errors.Is(err, apphistory.ErrHandNotFound):
		status, code = http.StatusNotFound, "hand_not_found"
	case errors.Is(err, apphistory.ErrPlayerInUse):
		status, code = http.StatusConflict, "player_in_use"
	case errors.Is(err, apphistory.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	default:
		metricInternalErrors.Add(1)
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeHTTPErrorMessage(w, status, code, err.Error())
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteHTTPError(w, http.StatusRequestEntityTooLarge, "body_too_large")
		return
	}
	writeHTTPErrorMessage(w, http.StatusBadRequest, "invalid_json", err.Error())
}
