package planner

import (
	"fmt"
	"math"
	"time"

	"trip-planner-service/internal/domain"
)

// ScheduleRoute distributes the trip's day budget across the route and
// produces one arrival/departure entry per city.
//
// Each city receives floor(totalDays/cities) days; leftover days go one by
// one to the first cities in route order. The bias toward earlier cities is a
// deliberate, simple tie-break: no interest or population signal is modeled
// here.
//
// legDurationsH carries the transit hours between consecutive cities, in
// route order (len(route)-1 values, typically taken from the transport
// plan's inter-city segments). Nil means zero transit time. Transit is
// rounded up to whole hours: with terminal overhead already folded in, the
// conservative side is the useful one for planning.
//
// A schedule that runs past the day budget is flagged OverBudget, never
// truncated: one entry per city is the stronger guarantee.
func ScheduleRoute(route domain.Route, params domain.TripParameters, legDurationsH []float64) (domain.Schedule, error) {
	if len(route) == 0 {
		return domain.Schedule{}, fmt.Errorf("schedule route: %w", domain.ErrEmptyRoute)
	}
	if params.TotalDays < 1 {
		return domain.Schedule{}, fmt.Errorf("schedule route: %w: got %d", domain.ErrNonPositiveDays, params.TotalDays)
	}
	if legDurationsH != nil && len(legDurationsH) != len(route)-1 {
		return domain.Schedule{}, fmt.Errorf(
			"schedule route: got %d leg durations for %d cities, want %d",
			len(legDurationsH), len(route), len(route)-1,
		)
	}

	n := len(route)
	base := params.TotalDays / n
	leftover := params.TotalDays % n

	entries := make([]domain.ScheduleEntry, 0, n)
	arrival := params.StartDate

	for i, city := range route {
		days := base
		if i < leftover {
			days++
		}

		departure := arrival.Add(time.Duration(days) * 24 * time.Hour)
		entries = append(entries, domain.ScheduleEntry{
			CityID:        city.ID,
			Arrival:       arrival,
			Departure:     departure,
			AllocatedDays: days,
		})

		if i < n-1 {
			transit := 0.0
			if legDurationsH != nil {
				transit = legDurationsH[i]
			}
			arrival = departure.Add(time.Duration(math.Ceil(transit)) * time.Hour)
		}
	}

	budgetEnd := params.StartDate.Add(time.Duration(params.TotalDays) * 24 * time.Hour)
	over := entries[len(entries)-1].Departure.After(budgetEnd)

	return domain.Schedule{Entries: entries, OverBudget: over}, nil
}
