package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/taskboard-hq/taskboard-api/internal/api"
	apimiddleware "github.com/taskboard-hq/taskboard-api/internal/api/middleware"
)

// setupRouter builds the route tree: public auth endpoints, then the
// board and task endpoints behind the bearer-token middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	boardHandler := api.NewBoardHandler(app.boardService)
	taskHandler := api.NewTaskHandler(app.taskStore)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/signup", authHandler.Signup)
		r.Post("/user/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/boards", boardHandler.List)
			r.Post("/boards", boardHandler.Create)
			r.Get("/boards/{id}", boardHandler.Get)
			r.Put("/boards/{id}", boardHandler.Update)
			r.Delete("/boards/{id}", boardHandler.Delete)

			r.Post("/tasks", taskHandler.Create)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
