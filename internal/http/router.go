package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hemodesk/hemodesk/internal/http/auth"
	"github.com/hemodesk/hemodesk/internal/http/catalog"
	"github.com/hemodesk/hemodesk/internal/http/finance"
	"github.com/hemodesk/hemodesk/internal/http/hr"
	"github.com/hemodesk/hemodesk/internal/http/inventory"
	"github.com/hemodesk/hemodesk/internal/http/lab"
	"github.com/hemodesk/hemodesk/internal/http/patient"
	"github.com/hemodesk/hemodesk/internal/http/report"
	"github.com/hemodesk/hemodesk/internal/http/session"
)

type Options struct {
	CORSOrigin string
	Auth       func(http.Handler) http.Handler
}

func New(
	authV1 *auth.Handler,
	patientsV1 *patient.Handler,
	servicesV1 *catalog.Handler,
	inventoryV1 *inventory.Handler,
	sessionsV1 *session.Handler,
	hrV1 *hr.Handler,
	financeV1 *finance.Handler,
	labV1 *lab.Handler,
	reportsV1 *report.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		// Login stays outside the token check.
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(opts.Auth)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				authV1.UserRoutes(r)
			})

			r.Route("/patients", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				patientsV1.Routes(r)
			})

			r.Route("/services", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				servicesV1.Routes(r)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				inventoryV1.Routes(r)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				sessionsV1.Routes(r)
			})

			// The shift import endpoint takes multipart uploads, so no
			// content type restriction here.
			r.Route("/hr", hrV1.Routes)

			r.Route("/finance", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				financeV1.Routes(r)
			})

			r.Route("/lab", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				labV1.Routes(r)
			})

			r.Route("/reports", func(r chi.Router) {
				reportsV1.Routes(r)
			})
		})
	})

	return router
}
