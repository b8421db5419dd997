package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withTimeout)

	router.Get("/api/ping", h.ping)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logout", h.logout)
			r.Get("/session", h.session)
		})
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(middleware.Compress(5, "application/json"))

		r.Get("/api/categories", h.listCategories)
		r.Post("/api/categories", h.createCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)
		r.Get("/api/categories/{id}/documents", h.listDocuments)
		r.Post("/api/categories/{id}/documents", h.uploadDocument)

		r.Get("/api/documents", h.searchDocuments)
		r.Patch("/api/documents/{id}", h.renameDocument)
		r.Delete("/api/documents/{id}", h.deleteDocument)
		r.Get("/api/documents/{id}/url", h.documentURL)

		r.Get("/api/folders", h.listFolders)
		r.Post("/api/folders", h.createFolder)
		r.Get("/api/folders/{id}/registres", h.listRegistres)
		r.Post("/api/folders/{id}/registres", h.createRegistre)

		r.Get("/api/registres/{id}", h.getRegistre)
		r.Put("/api/registres/{id}", h.updateRegistre)
		r.Get("/api/registres/{id}/signature/url", h.signatureURL)

		r.Post("/api/signatures", h.uploadSignature)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed(router))

	return router
}

// requestTimeout is the handling budget of one request; uploads get four
// times as much.
func (h *Handler) requestTimeout() time.Duration {
	if h.cfg.RequestTimeout > 0 {
		return h.cfg.RequestTimeout
	}
	return 10 * time.Second
}
