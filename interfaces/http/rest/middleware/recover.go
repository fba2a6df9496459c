package middleware

import (
	"net/http"
	"runtime/debug"

	"todoapi/pkg/api"
	"todoapi/pkg/errors"

	"go.uber.org/zap"
)

// Recoverer converts a panic into a generic 500 envelope so the caller
// never sees an unhandled fault or a stack trace.
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					api.Error(w, http.StatusInternalServerError, errors.CodeInternalError, "An internal error occurred")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
