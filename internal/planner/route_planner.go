package planner

import (
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

// Two nearest-neighbor candidates within this distance count as equidistant
// and fall back to the identifier tie-break.
const nearestTieEpsilonKm = 1e-9

type RoutingOptions struct {
	// StartCityID fixes the first city of the route. Empty means the first
	// input city starts the tour.
	StartCityID string

	// TwoOptPasses caps local-search refinement. Zero uses a default cap.
	TwoOptPasses int
}

// PlanRoute orders cities into an open path that approximately minimizes
// total consecutive-leg distance.
//
// The order is built greedily by nearest neighbor and refined with bounded
// 2-opt passes. This is a heuristic, not an exact TSP solver: only
// local-improvement is guaranteed. The result is deterministic for identical
// inputs: equidistant candidates are broken by the lexicographically smaller
// city identifier.
func PlanRoute(cities []domain.City, opts RoutingOptions) (domain.Route, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("plan route: %w", domain.ErrEmptyCityList)
	}

	for _, c := range cities {
		if !c.HasCoordinates() {
			return nil, fmt.Errorf("plan route: city %q has no coordinates: %w", c.ID, domain.ErrInvalidCoordinate)
		}
		if err := c.Coordinates.Validate(); err != nil {
			return nil, fmt.Errorf("plan route: city %q: %w", c.ID, err)
		}
	}

	// Nothing to order for trivial inputs; two cities keep their input order.
	if len(cities) <= 2 {
		return domain.Route(append([]domain.City(nil), cities...)), nil
	}

	dist, err := distanceMatrix(cities)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	start := 0
	if opts.StartCityID != "" {
		for i, c := range cities {
			if c.ID == opts.StartCityID {
				start = i
				break
			}
		}
	}

	order := nearestNeighborOrder(cities, dist, start)

	passes := opts.TwoOptPasses
	if passes <= 0 {
		passes = 8
	}
	order = improveOrder2Opt(dist, order, passes)

	route := make(domain.Route, 0, len(order))
	for _, idx := range order {
		route = append(route, cities[idx])
	}
	return route, nil
}

// distanceMatrix precomputes all pairwise great-circle distances.
func distanceMatrix(cities []domain.City) ([][]float64, error) {
	n := len(cities)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := geo.DistanceKm(*cities[i].Coordinates, *cities[j].Coordinates)
			if err != nil {
				return nil, fmt.Errorf("distance %q -> %q: %w", cities[i].ID, cities[j].ID, err)
			}
			dist[i][j] = d
			dist[j][i] = d
		}
	}
	return dist, nil
}

// nearestNeighborOrder builds an initial visiting order greedily.
func nearestNeighborOrder(cities []domain.City, dist [][]float64, start int) []int {
	n := len(cities)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	current := start
	visited[current] = true
	order = append(order, current)

	for len(order) < n {
		best := -1
		bestDist := 0.0

		for cand := 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			d := dist[current][cand]

			if best == -1 || d < bestDist-nearestTieEpsilonKm {
				best = cand
				bestDist = d
				continue
			}

			// Tie-breaker keeps the selection deterministic when candidates
			// are equidistant within epsilon.
			if d <= bestDist+nearestTieEpsilonKm && cities[cand].ID < cities[best].ID {
				best = cand
				bestDist = d
			}
		}

		visited[best] = true
		order = append(order, best)
		current = best
	}

	return order
}
