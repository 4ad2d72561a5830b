package domain

// Represents a single destination candidate for a trip.
// A City without coordinates cannot be placed in a route; callers must filter
// or substitute a default before invoking the routing or transport planners.
type City struct {
	ID          string
	Name        string
	Coordinates *Coordinate
}

func (c City) HasCoordinates() bool { return c.Coordinates != nil }
