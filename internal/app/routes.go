package app

import (
	"net/http"

	"github.com/brtemplate/authgate/internal/auth"
	"github.com/brtemplate/authgate/internal/middleware"
	"github.com/brtemplate/authgate/internal/pkg/message"
	"github.com/brtemplate/authgate/internal/pkg/web"
	"github.com/brtemplate/authgate/internal/platform/router"
	"github.com/brtemplate/authgate/internal/platform/validation"
	"github.com/brtemplate/authgate/internal/user"
)

func mountDemoRoutes(r router.Router, gate *auth.Gate) {
	r.Get("/api/common", handleCommon)
	r.Get("/api/protected", handleProtected, auth.RequireToken(gate))
}

func mountUserRoutes(r router.Router, handler *user.Handler, gate *auth.Gate, validator validation.Validator, maxBodySize int64) {
	r.Post("/api/user/register", handler.Register,
		middleware.DecodePayload[user.RegisterRequest](maxBodySize),
		middleware.ValidateInput[user.RegisterRequest](validator))
	r.Post("/api/user/login", handler.Login,
		middleware.DecodePayload[user.LoginRequest](maxBodySize),
		middleware.ValidateInput[user.LoginRequest](validator))
	r.Patch("/api/user/update", handler.Update,
		auth.RequireToken(gate),
		middleware.DecodePayload[user.UpdateRequest](maxBodySize),
		middleware.ValidateInput[user.UpdateRequest](validator))
}

// Preflight requests are answered by the CORS middleware. The route only
// makes sure OPTIONS requests under /api/ are routed to it.
func mountPreflightRoute(r router.Router) {
	r.Options("/api/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func handleCommon(w http.ResponseWriter, _ *http.Request) {
	web.Respond(w, http.StatusOK, message.CommonRoute)
}

func handleProtected(w http.ResponseWriter, _ *http.Request) {
	web.Respond(w, http.StatusOK, message.ProtectedRoute)
}
