package infra

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/outreach-workspace/internal/config"
)

const requestIDHeader = "X-Request-ID"

// LoggerHTTP puts the logger and a request id into the request context.
// An incoming X-Request-ID is reused so it follows the call through to the backend.
func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		ctx = context.WithValue(ctx, config.KeyRequestID, requestID)

		logger.Info(fmt.Sprintf("%s %s request_id=%s", r.Method, r.URL.Path, requestID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
