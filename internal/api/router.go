package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/schedulizer/schedulizer-api/internal/api/middleware"
	"github.com/schedulizer/schedulizer-api/internal/api/shared"
)

// RouterDeps bundles the handlers and middleware the router wires up.
type RouterDeps struct {
	Auth      *AuthHandler
	Schedules *ScheduleHandler
	Users     *UserHandler
	Identity  *middleware.Identity
}

// NewRouter builds the HTTP surface: public auth endpoints, protected
// resource routes, and a health check.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", deps.Auth.Register)
		r.Post("/auth/login", deps.Auth.Login)
		r.Post("/auth/refresh", deps.Auth.Refresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(deps.Identity.Authenticate)

			r.Get("/auth/verify", deps.Auth.Verify)

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", deps.Schedules.GetAll)
				r.Post("/", deps.Schedules.Create)
				r.Patch("/", deps.Schedules.Update)
				r.Post("/explore", deps.Schedules.Explore)
				r.Get("/{id}", deps.Schedules.Get)
				r.Delete("/{id}", deps.Schedules.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", deps.Users.GetAll)
				r.Post("/", deps.Users.Create)
				r.Patch("/", deps.Users.Update)
				r.Post("/explore", deps.Users.Explore)
				r.Get("/{id}", deps.Users.Get)
				r.Delete("/{id}", deps.Users.Delete)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
