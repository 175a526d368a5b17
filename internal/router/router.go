// Package router sets up all HTTP routes and middleware chains for the
// PureDesign server. It organizes routes into the public site API and the
// authenticated admin API with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"puredesign/internal/handlers"
	"puredesign/internal/middleware"
	"puredesign/internal/session"
)

// inquiryLimit throttles the public inquiry endpoint: 5 submissions per
// minute per client IP.
const (
	inquiryLimit  = 5
	inquiryWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned stop function tears down the
// rate limiter's background goroutine.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, upload *handlers.Upload) (chi.Router, func()) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	limiter := middleware.NewRateLimiter(inquiryLimit, inquiryWindow)

	// Public site API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/content", public.GetContent)
		r.Get("/projects", public.GetProjects)
		r.With(limiter.Middleware).Post("/inquiries", public.CreateInquiry)
	})

	// Admin API — CSRF on everything, auth beyond the login surface.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Login is the only endpoint reachable without a session.
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed verification.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/me", auth.Me)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})

		// Authenticated + 2FA-verified editor area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Global content sections
			r.Route("/content", func(r chi.Router) {
				r.Put("/hero", admin.UpdateHero)
				r.Put("/about", admin.UpdateAbout)
				r.Put("/contact", admin.UpdateContact)
			})

			// Translation tree
			r.Route("/translations", func(r chi.Router) {
				r.Post("/save", admin.SaveTranslations)
				r.Put("/{locale}/packages/{index}", admin.UpdateServicePackage)
				r.Put("/{locale}/{section}", admin.UpdateTranslation)
			})

			r.Put("/language", admin.SetLanguage)

			// Portfolio projects
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ListProjects)
				r.Post("/", admin.CreateProject)
				r.Get("/{id}", admin.GetProject)
				r.Put("/{id}", admin.UpdateProject)
				r.Delete("/{id}", admin.DeleteProject)
			})

			// Categories
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.ListCategories)
				r.Post("/", admin.CreateCategory)
				r.Delete("/{name}", admin.DeleteCategory)
			})

			// Inquiries
			r.Route("/inquiries", func(r chi.Router) {
				r.Get("/", admin.ListInquiries)
				r.Post("/{id}/read", admin.MarkInquiryRead)
				r.Delete("/{id}", admin.DeleteInquiry)
			})

			// Asset uploads
			r.Post("/uploads", upload.Create)
			r.Delete("/uploads", upload.Delete)
		})
	})

	return r, limiter.Stop
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
