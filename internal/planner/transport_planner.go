package planner

import (
	"fmt"

	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

// PlanTransport produces the full transport plan for an ordered route: a home
// leg to the first city, one leg per consecutive city pair, and a home leg
// back from the last city.
//
// Home legs are always flights. When home coordinates are unknown the home
// legs fall back to a conservative fixed estimate instead of failing; the
// bias toward overestimation is deliberate (planning safety).
func PlanTransport(
	route domain.Route,
	home *domain.Coordinate,
	islands geo.IslandClassifier,
	cfg config.PlannerConfig,
) (domain.TransportPlan, error) {
	if len(route) == 0 {
		return domain.TransportPlan{}, fmt.Errorf("plan transport: %w", domain.ErrEmptyRoute)
	}

	segments := make([]domain.TransportSegment, 0, len(route)+1)

	outbound, err := homeLeg(home, route[0], domain.HomeID, route[0].ID, cfg)
	if err != nil {
		return domain.TransportPlan{}, fmt.Errorf("plan transport: outbound home leg: %w", err)
	}
	segments = append(segments, outbound)

	for i := 0; i < len(route)-1; i++ {
		seg, err := cityLeg(route[i], route[i+1], islands, cfg)
		if err != nil {
			return domain.TransportPlan{}, fmt.Errorf("plan transport: leg %q -> %q: %w", route[i].ID, route[i+1].ID, err)
		}
		segments = append(segments, seg)
	}

	last := route[len(route)-1]
	inbound, err := homeLeg(home, last, last.ID, domain.HomeID, cfg)
	if err != nil {
		return domain.TransportPlan{}, fmt.Errorf("plan transport: return home leg: %w", err)
	}
	segments = append(segments, inbound)

	return domain.TransportPlan{
		Segments: segments,
		Totals:   sumTotals(segments),
	}, nil
}

// homeLeg builds one synthetic leg between home and a route endpoint.
func homeLeg(home *domain.Coordinate, city domain.City, fromID, toID string, cfg config.PlannerConfig) (domain.TransportSegment, error) {
	if home == nil || !city.HasCoordinates() {
		// Unknown long-haul travel: fixed conservative estimate rather than a
		// guessed geodesic.
		return domain.TransportSegment{
			FromCityID:    fromID,
			ToCityID:      toID,
			Method:        domain.ModeFlightLong,
			DistanceKm:    0,
			DurationH:     cfg.HomeLegFallbackDurationH,
			EstimatedCost: cfg.FlatFees[domain.ModeFlightLong],
		}, nil
	}

	d, err := geo.DistanceKm(*home, *city.Coordinates)
	if err != nil {
		return domain.TransportSegment{}, err
	}

	method := domain.ModeFlightShort
	if d >= cfg.ShortFlightMaxKm {
		method = domain.ModeFlightLong
	}

	return buildSegment(fromID, toID, method, d, cfg), nil
}

// cityLeg builds one leg between two consecutive route cities.
func cityLeg(from, to domain.City, islands geo.IslandClassifier, cfg config.PlannerConfig) (domain.TransportSegment, error) {
	d, err := geo.DistanceKm(*from.Coordinates, *to.Coordinates)
	if err != nil {
		return domain.TransportSegment{}, err
	}

	method := selectMode(d, islands.IsIsland(from) && islands.IsIsland(to), cfg)
	return buildSegment(from.ID, to.ID, method, d, cfg), nil
}

// selectMode picks a travel mode for an inter-city leg. Rules are evaluated
// in order, first match wins; tier bounds are inclusive on the lower bound of
// the next tier (a leg of exactly CarMaxKm rides the bus).
func selectMode(distanceKm float64, bothIslands bool, cfg config.PlannerConfig) domain.TravelMode {
	if bothIslands && distanceKm < cfg.BoatMaxKm {
		return domain.ModeBoat
	}

	switch {
	case distanceKm < cfg.CarMaxKm:
		return domain.ModeCar
	case distanceKm < cfg.BusMaxKm:
		return domain.ModeIntercityBus
	case distanceKm < cfg.TrainMaxKm:
		return domain.ModeTrain
	case distanceKm < cfg.ShortFlightMaxKm:
		return domain.ModeFlightShort
	default:
		return domain.ModeFlightLong
	}
}

// buildSegment applies the duration and cost models for a known distance.
func buildSegment(fromID, toID string, method domain.TravelMode, distanceKm float64, cfg config.PlannerConfig) domain.TransportSegment {
	duration := distanceKm/cfg.SpeedsKmh[method] + cfg.OverheadH[method]
	cost := distanceKm*cfg.PerKmRates[method] + cfg.FlatFees[method]

	return domain.TransportSegment{
		FromCityID:    fromID,
		ToCityID:      toID,
		Method:        method,
		DistanceKm:    distanceKm,
		DurationH:     duration,
		EstimatedCost: cost,
	}
}

func sumTotals(segments []domain.TransportSegment) domain.PlanTotals {
	t := domain.PlanTotals{Segments: len(segments)}
	for _, s := range segments {
		t.TotalDistanceKm += s.DistanceKm
		t.TotalDurationH += s.DurationH
		t.TotalCost += s.EstimatedCost
	}
	return t
}
