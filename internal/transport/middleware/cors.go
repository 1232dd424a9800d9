package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/cours-de-japonais/katsuyou/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control headers for allowed origins.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.Split(cfg.AllowedOrigins),
		AllowedMethods:   config.Split(cfg.AllowedMethods),
		AllowedHeaders:   config.Split(cfg.AllowedHeaders),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
