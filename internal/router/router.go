// Package router sets up all HTTP routes and middleware chains for the
// IntraAsia site backend. The JSON API lives under /api; everything else
// falls through to the static asset tree.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"intraasia/internal/handlers"
	"intraasia/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil, in which case contact
// submissions are not rate limited.
func New(catalog *handlers.Catalog, contact *handlers.Contact, images *handlers.Images, limiter *middleware.RateLimiter, publicDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Catalog — read-only product browsing.
		r.Get("/products", catalog.List)
		r.Get("/products/{slug}", catalog.Detail)
		r.Get("/categories", catalog.Groups)
		r.Get("/categories/{category}", catalog.ByCategory)
		r.Get("/categories/{category}/{subcategory}", catalog.ByCategory)
		r.Get("/hero-slides", catalog.HeroSlides)

		// Asset discovery for carousels and logo strips.
		r.Get("/images", images.List)

		// Contact intake — rate limited per client IP.
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Middleware)
			}
			r.Post("/contact", contact.Submit)
		})
	})

	// Everything else is a public asset: hero images, brand logos,
	// product shots.
	r.Handle("/*", http.FileServer(http.Dir(publicDir)))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
