package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
)

// LoggingMiddleware returns a middleware that logs HTTP requests and passes a
// request scoped logger to handlers
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := ctxlog.From(ctx).With("request_id", middleware.GetReqID(r.Context()))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(ctxlog.With(r.Context(), logger)))
		})
	}
}

// writeJSON writes a JSON response
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response. Documents that parse but do not match
// the expected shape are reported as 422.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	writeJSON(ctx, w, statusOf(err), map[string]string{
		"error": err.Error(),
	})
}

func statusOf(err error) int {
	var (
		missing   *model.MissingFieldError
		wrongType *model.WrongTypeError
		noPrimary *model.NoPrimaryRepositoryError
		collision *model.AggregateKeyCollisionError
		tooLarge  *http.MaxBytesError
	)

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &missing), errors.As(err, &wrongType), errors.As(err, &noPrimary), errors.As(err, &collision):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
