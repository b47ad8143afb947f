package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tunnelstats/app"
	"tunnelstats/ports"
)

// App represents the HTTP surface of the analysis pipeline. It accepts raw
// tables and session parameters and returns cleaned tables, statistics and
// report lines; chart rendering stays with the caller.
type App struct {
	router  *chi.Mux
	service *app.AnalysisService
	reader  ports.TableReader

	// defaultFile is served when a request carries no upload.
	defaultFile string
}

// NewApp creates the HTTP application.
func NewApp(service *app.AnalysisService, reader ports.TableReader, defaultFile string) *App {
	a := &App{
		router:      chi.NewRouter(),
		service:     service,
		reader:      reader,
		defaultFile: defaultFile,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Post("/api/analyze", a.handleAnalyze)
	a.router.Get("/api/report", a.handleReport)
}

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	log.Printf("[ui] Starting analysis server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
