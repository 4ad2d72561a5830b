package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/geo"
	"trip-planner-service/internal/platform/metrics"
	"trip-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.CityRepository, cfg config.PlannerConfig, islands geo.IslandClassifier) http.Handler {
	mux := http.NewServeMux()

	cityHandler := &handlers.CityHandler{Repo: repo}
	planHandler := handlers.NewPlanHandler(repo, cfg, islands)

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/cities", cityHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return observeMiddleware(mux)
}
