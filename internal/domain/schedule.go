package domain

import "time"

// Arrival/departure window for one city on the route.
// Arrival always precedes or equals Departure. Consecutive entries are
// separated by transit time, which is modeled in the transport plan rather
// than inside the entries themselves.
type ScheduleEntry struct {
	CityID        string
	Arrival       time.Time
	Departure     time.Time
	AllocatedDays int
}

// Complete per-city schedule for a trip.
//
// OverBudget reports that the cumulative schedule runs past the requested
// trip duration. The scheduler still emits one entry per city in that case;
// reacting (adding days, dropping a city) is the caller's decision.
type Schedule struct {
	Entries    []ScheduleEntry
	OverBudget bool
}
