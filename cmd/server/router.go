package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/promptgen-api/internal/api"
	apiMiddleware "github.com/phrazzld/promptgen-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if app.config.Server.Debug {
		// Per-request access logging, too chatty for normal operation.
		r.Use(middleware.Logger)
	}
	r.Use(apiMiddleware.TraceMiddleware)

	promptHandler := api.NewPromptHandler(app.promptService, app.logger)

	r.Get("/", promptHandler.Index)
	r.Post("/generate-prompt", promptHandler.GeneratePrompt)
	r.Get("/health", promptHandler.Health)
	r.Get("/prompt-types", promptHandler.PromptTypes)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	return r
}
