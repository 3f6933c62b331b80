package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupMiddleware() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// Request ID for tracing
		middleware.RequestID,

		// Logging middleware
		middleware.Logger,

		// Recovery middleware
		middleware.Recoverer,

		// CORS middleware for the editor frontend
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           300,
		}),

		// Timeout middleware; map preview generation is the slowest path
		middleware.Timeout(60 * time.Second),
	}
}
