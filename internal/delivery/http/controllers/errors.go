package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vishyarjun/fyyur/internal/delivery/http/helpers"
	"github.com/vishyarjun/fyyur/internal/domain"
)

// writeServiceError maps a service error onto the API envelope. notFound is
// the message used for domain.ErrNotFound.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFound string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, verr.Error())
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFound)
	case errors.Is(err, domain.ErrHasShows):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrPersistence):
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err, "cause", errors.Unwrap(err))
		status, code := http.StatusInternalServerError, helpers.ErrCodeInternalError
		if errors.Is(err, domain.ErrReferenceViolation) {
			status, code = http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable
		}
		// PersistenceError text is written for end users.
		helpers.WriteJSONError(w, status, code, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}

func writeNotFound(w http.ResponseWriter, message string) {
	helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, message)
}
