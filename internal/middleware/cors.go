package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const (
	HeaderOrigin        = "Origin"
	HeaderRequestMethod = "Access-Control-Request-Method"
	HeaderAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderAllowMethods  = "Access-Control-Allow-Methods"
	HeaderAllowCreds    = "Access-Control-Allow-Credentials"
)

var (
	allowedMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	allowedHeaders = []string{"Accept", "Authorization", "Content-Type"}
)

// CORS only answers requests coming from allowedOrigin. Preflight requests
// end here and never reach the route.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		AllowCredentials: true,
		MaxAge:           300,
	})
}
