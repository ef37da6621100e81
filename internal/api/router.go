package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/regsheet/regsheet/internal/api/handler"
	"github.com/regsheet/regsheet/internal/api/middleware"
	"github.com/regsheet/regsheet/internal/sheetcfg"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Sheets    handler.SheetFetcher
	Status    handler.StatusReporter
	Registrar handler.Registrar
	CfgStore  sheetcfg.Repository
	CfgPinger handler.Pinger // nil for the in-memory store
	Defaults  handler.Defaults

	Version        string
	LogLevel       slog.Level
	AllowedOrigins []string
}

// NewRouter creates and configures a chi router with all middleware and
// routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logger := httplog.NewLogger("regsheet", httplog.Options{
		LogLevel:         deps.LogLevel,
		Concise:          true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": deps.Version,
		},
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Metrics)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3000,
	}))

	healthHandler := handler.NewHealthHandler(deps.Status, deps.CfgPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	statusHandler := handler.NewStatusHandler(deps.Status, deps.CfgStore, deps.Defaults)
	dataHandler := handler.NewDataHandler(deps.Sheets, deps.CfgStore, deps.Defaults)
	configHandler := handler.NewConfigHandler(deps.CfgStore, deps.Defaults)
	checkHandler := handler.NewCheckHandler(deps.Sheets, deps.CfgStore, deps.Defaults)
	registerHandler := handler.NewRegisterHandler(deps.Registrar, deps.CfgStore, deps.Defaults)

	r.Route("/api/sheets", func(r chi.Router) {
		r.Get("/status", statusHandler.ServeHTTP)
		r.Get("/data", dataHandler.ServeHTTP)
		r.Get("/config", configHandler.Get)
		r.Post("/config", configHandler.Update)
		r.Get("/check-team", checkHandler.CheckTeam)
		r.Get("/check-project", checkHandler.CheckProject)
		r.Get("/check-student-id", checkHandler.CheckStudentID)
		r.Post("/register", registerHandler.ServeHTTP)
	})

	return r
}
