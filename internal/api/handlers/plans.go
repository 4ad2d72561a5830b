package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
	"trip-planner-service/internal/planner"
	"trip-planner-service/internal/platform/metrics"
	"trip-planner-service/internal/ports"
)

// PlanHandler runs the trip planning pipeline for HTTP callers.
// It resolves input cities (inline or via the catalog), guards against
// concurrent regenerations of the same trip, and maps the computed plan onto
// the response contract.
type PlanHandler struct {
	Repo    ports.CityRepository
	Config  config.PlannerConfig
	Islands geo.IslandClassifier

	locks *tripLocker
}

func NewPlanHandler(repo ports.CityRepository, cfg config.PlannerConfig, islands geo.IslandClassifier) *PlanHandler {
	return &PlanHandler{
		Repo:    repo,
		Config:  cfg,
		Islands: islands,
		locks:   newTripLocker(),
	}
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	cities, err := h.resolveCities(r, req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Cities without coordinates cannot be routed; reporting them is more
	// useful to the caller than silently dropping stops.
	for _, c := range cities {
		if !c.HasCoordinates() {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("city %q has no coordinates", c.ID))
			return
		}
	}

	tripID := req.TripID
	if tripID == "" {
		tripID = uuid.NewString()
	}

	// At most one regeneration per trip runs at a time.
	unlock := h.locks.Lock(tripID)
	defer unlock()

	start := time.Now()
	plan, err := planner.PlanTrip(
		cities,
		req.Trip.ToDomainParams(),
		h.Config,
		h.Islands,
		planner.RoutingOptions{StartCityID: req.StartCityID},
	)
	if err != nil {
		metrics.PlansGenerated.WithLabelValues("error").Inc()
		writePlanningError(w, r, err)
		return
	}
	metrics.PlansGenerated.WithLabelValues("ok").Inc()
	metrics.PlanDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, r, http.StatusOK, dto.FromTripPlan(uuid.NewString(), tripID, plan))
}

// resolveCities prefers inline cities and falls back to catalog lookup.
func (h *PlanHandler) resolveCities(r *http.Request, req dto.PlanRequest) ([]domain.City, error) {
	if len(req.Cities) > 0 {
		cities := make([]domain.City, 0, len(req.Cities))
		for i, c := range req.Cities {
			if c.ID == "" {
				return nil, fmt.Errorf("cities[%d]: id is required", i)
			}
			cities = append(cities, c.ToDomainCity())
		}
		return cities, nil
	}

	if len(req.CityIDs) == 0 {
		return nil, fmt.Errorf("cities or city_ids is required")
	}

	cities, err := h.Repo.GetCities(r.Context(), req.CityIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve cities: %w", err)
	}

	if len(cities) != len(req.CityIDs) {
		found := make(map[string]bool, len(cities))
		for _, c := range cities {
			found[c.ID] = true
		}
		for _, id := range req.CityIDs {
			if !found[id] {
				return nil, fmt.Errorf("unknown city %q", id)
			}
		}
	}

	return cities, nil
}
