package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bloghq/blog-api/internal/api"
	apiMiddleware "github.com/bloghq/blog-api/internal/api/middleware"
	"github.com/bloghq/blog-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The authentication pipeline runs on every request and never
// rejects; per-route gates decide access.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authenticator := apiMiddleware.NewAuthenticator(app.jwtService, app.userStore)
	r.Use(authenticator.Authenticate)

	adminOnly := apiMiddleware.RequireRole(domain.RoleAdmin)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	postHandler := api.NewPostHandler(app.postService, app.logger)
	commentHandler := api.NewCommentHandler(app.commentService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Posts: reads are public, mutations require ADMIN
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.List)
			r.Get("/{id}", postHandler.GetByID)
			r.Get("/category/{id}", postHandler.ListByCategory)
			r.With(adminOnly).Post("/", postHandler.Create)
			r.With(adminOnly).Put("/{id}", postHandler.Update)
			r.With(adminOnly).Delete("/{id}", postHandler.Delete)

			// Comments are a sub-resource: creation and edits are open to
			// visitors, deletion is moderation and requires ADMIN
			r.Route("/{postId}/comments", func(r chi.Router) {
				r.Post("/", commentHandler.Create)
				r.Get("/", commentHandler.ListByPost)
				r.Get("/{commentId}", commentHandler.GetByID)
				r.Put("/{commentId}", commentHandler.Update)
				r.With(adminOnly).Delete("/{commentId}", commentHandler.Delete)
			})
		})

		// Categories: reads are public, mutations require ADMIN
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Get("/{id}", categoryHandler.GetByID)
			r.With(adminOnly).Post("/", categoryHandler.Create)
			r.With(adminOnly).Put("/{id}", categoryHandler.Update)
			r.With(adminOnly).Delete("/{id}", categoryHandler.Delete)
		})
	})

	// The v2 post representation carries tags alongside the v1 fields.
	r.Get("/api/v2/posts/{id}", postHandler.GetByIDV2)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
