package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/vishyarjun/fyyur/internal/delivery/http/helpers"
)

// Recover turns a panic in next into a 500 response in the API envelope.
// It sits inside LoggingMiddleware so the access log records the 500.
// http.ErrAbortHandler is re-panicked so the server can abort the connection.
func Recover(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic serving request",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()),
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
