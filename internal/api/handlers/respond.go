package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/stayhaven/hotel-booking/backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}

// respondWithAppError maps a typed application error to its HTTP
// status. Internal details are logged, never exposed to the caller.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
		case apperrors.ErrorTypeForbidden:
			respondWithError(w, http.StatusForbidden, appErr.Message)
		default:
			log.Error().Err(err).Msg("request failed")
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	log.Error().Err(err).Msg("request failed")
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
