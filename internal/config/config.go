package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trip-planner-service/internal/domain"
)

// Get returns the value of an environment variable or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// PlannerConfig carries every tunable of the planning pipeline as an explicit
// value. Passing it into the planners (instead of reading ambient environment
// state) keeps runs deterministic and lets tests vary the tables freely.
type PlannerConfig struct {
	// Mode constants for the duration and cost models.
	SpeedsKmh  map[domain.TravelMode]float64 `yaml:"speeds_kmh"`
	OverheadH  map[domain.TravelMode]float64 `yaml:"overhead_h"`
	PerKmRates map[domain.TravelMode]float64 `yaml:"per_km_rates"`
	FlatFees   map[domain.TravelMode]float64 `yaml:"flat_fees"`

	// Distance tiers for mode selection. Each bound is exclusive: a leg of
	// exactly CarMaxKm falls into the next tier.
	CarMaxKm         float64 `yaml:"car_max_km"`
	BusMaxKm         float64 `yaml:"bus_max_km"`
	TrainMaxKm       float64 `yaml:"train_max_km"`
	ShortFlightMaxKm float64 `yaml:"short_flight_max_km"`

	// Boat is only considered below this distance and only between islands.
	BoatMaxKm float64 `yaml:"boat_max_km"`

	// Conservative home-leg duration used when home coordinates are unknown.
	HomeLegFallbackDurationH float64 `yaml:"home_leg_fallback_duration_h"`

	// Cap on 2-opt improvement passes during route refinement.
	TwoOptPasses int `yaml:"two_opt_passes"`

	// Optional traveler home location; a per-trip home overrides it.
	HomeCoordinates *domain.Coordinate `yaml:"home_coordinates"`
}

// Default returns the built-in constant tables.
func Default() PlannerConfig {
	return PlannerConfig{
		SpeedsKmh: map[domain.TravelMode]float64{
			domain.ModeCar:          80,
			domain.ModeIntercityBus: 60,
			domain.ModeTrain:        120,
			domain.ModeFlightShort:  700,
			domain.ModeFlightLong:   800,
			domain.ModeBoat:         30,
		},
		OverheadH: map[domain.TravelMode]float64{
			domain.ModeCar:          0,
			domain.ModeIntercityBus: 0.5,
			domain.ModeTrain:        0.5,
			domain.ModeFlightShort:  2,
			domain.ModeFlightLong:   3,
			domain.ModeBoat:         0.5,
		},
		PerKmRates: map[domain.TravelMode]float64{
			domain.ModeCar:          0.30,
			domain.ModeIntercityBus: 0.10,
			domain.ModeTrain:        0.16,
			domain.ModeFlightShort:  0.12,
			domain.ModeFlightLong:   0.12,
			domain.ModeBoat:         0.18,
		},
		FlatFees: map[domain.TravelMode]float64{
			domain.ModeCar:          0,
			domain.ModeIntercityBus: 0,
			domain.ModeTrain:        0,
			domain.ModeFlightShort:  60,
			domain.ModeFlightLong:   180,
			domain.ModeBoat:         15,
		},
		CarMaxKm:                 80,
		BusMaxKm:                 200,
		TrainMaxKm:               700,
		ShortFlightMaxKm:         2000,
		BoatMaxKm:                300,
		HomeLegFallbackDurationH: 10,
		TwoOptPasses:             8,
	}
}

// Load returns the default config overlaid with values from a YAML file.
// An empty path returns the defaults unchanged. Partial files are fine:
// unmentioned modes keep their default constants.
func Load(path string) (PlannerConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return PlannerConfig{}, fmt.Errorf("load planner config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return PlannerConfig{}, fmt.Errorf("load planner config: parse %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return PlannerConfig{}, fmt.Errorf("load planner config: %w", err)
	}

	return cfg, nil
}

var allModes = []domain.TravelMode{
	domain.ModeCar,
	domain.ModeIntercityBus,
	domain.ModeTrain,
	domain.ModeFlightShort,
	domain.ModeFlightLong,
	domain.ModeBoat,
}

// Validate rejects configs that would produce nonsensical estimates.
func (c PlannerConfig) Validate() error {
	for _, m := range allModes {
		speed, ok := c.SpeedsKmh[m]
		if !ok || speed <= 0 {
			return fmt.Errorf("planner config: speed for mode %q must be positive", m)
		}
		if c.OverheadH[m] < 0 {
			return fmt.Errorf("planner config: overhead for mode %q must not be negative", m)
		}
		if c.PerKmRates[m] < 0 {
			return fmt.Errorf("planner config: per-km rate for mode %q must not be negative", m)
		}
		if c.FlatFees[m] < 0 {
			return fmt.Errorf("planner config: flat fee for mode %q must not be negative", m)
		}
	}

	if !(c.CarMaxKm < c.BusMaxKm && c.BusMaxKm < c.TrainMaxKm && c.TrainMaxKm < c.ShortFlightMaxKm) {
		return fmt.Errorf("planner config: distance tiers must be strictly increasing")
	}
	if c.BoatMaxKm <= 0 {
		return fmt.Errorf("planner config: boat max distance must be positive")
	}
	if c.HomeLegFallbackDurationH <= 0 {
		return fmt.Errorf("planner config: home leg fallback duration must be positive")
	}
	if c.TwoOptPasses < 0 {
		return fmt.Errorf("planner config: two-opt pass cap must not be negative")
	}

	if c.HomeCoordinates != nil {
		if err := c.HomeCoordinates.Validate(); err != nil {
			return fmt.Errorf("planner config: home coordinates: %w", err)
		}
	}

	return nil
}
