package planner

import (
	"fmt"

	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

// TripPlan is the complete output of one planning invocation: visiting
// order, per-city schedule, and inter-city transport plan.
type TripPlan struct {
	Route     domain.Route
	Schedule  domain.Schedule
	Transport domain.TransportPlan
}

// PlanTrip runs the full pipeline: order the cities, plan transport over the
// resulting route, then distribute the day budget using the transport plan's
// inter-city durations.
//
// The computation is pure and CPU-bound: no I/O, no randomness, no clock
// reads beyond the supplied start date. Identical inputs produce identical
// plans, so concurrent runs with the same input are safe; serializing
// regenerations per trip is the caller's job.
func PlanTrip(
	cities []domain.City,
	params domain.TripParameters,
	cfg config.PlannerConfig,
	islands geo.IslandClassifier,
	opts RoutingOptions,
) (*TripPlan, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	if opts.TwoOptPasses == 0 {
		opts.TwoOptPasses = cfg.TwoOptPasses
	}

	route, err := PlanRoute(cities, opts)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	home := params.HomeCoordinates
	if home == nil {
		home = cfg.HomeCoordinates
	}

	transport, err := PlanTransport(route, home, islands, cfg)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	schedule, err := ScheduleRoute(route, params, transport.InterCityDurations())
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return &TripPlan{
		Route:     route,
		Schedule:  schedule,
		Transport: transport,
	}, nil
}
