package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/skyfold/flightdeck/internal/httpserver/deps"
	"github.com/skyfold/flightdeck/internal/httpserver/handlers"
)

func init() { Register(registerInfra) }

func registerInfra(r chi.Router, d deps.Deps) {
	r.Get("/infra", handlers.Infra(d))
}
