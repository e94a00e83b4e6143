package server

import (
	"net/http"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

// WithMiddleware adds access logging and permissive CORS in front of h.
func WithMiddleware(h http.Handler, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	access := zap.NewStdLog(logger.Named("access")).Writer()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(handlers.LoggingHandler(access, h))
}
