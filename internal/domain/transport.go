package domain

// TravelMode identifies the transport method selected for a leg.
type TravelMode string

const (
	ModeCar          TravelMode = "car"
	ModeIntercityBus TravelMode = "intercity_bus"
	ModeTrain        TravelMode = "train"
	ModeFlightShort  TravelMode = "flight_short"
	ModeFlightLong   TravelMode = "flight_long"
	ModeBoat         TravelMode = "boat"
)

// HomeID is the synthetic endpoint identifier used by home legs.
const HomeID = "HOME"

// One directed travel leg between two consecutive stops.
type TransportSegment struct {
	FromCityID    string
	ToCityID      string
	Method        TravelMode
	DistanceKm    float64
	DurationH     float64
	EstimatedCost float64
}

// Aggregate of all segment fields in a plan.
type PlanTotals struct {
	Segments        int
	TotalDistanceKm float64
	TotalDurationH  float64
	TotalCost       float64
}

// Full inter-city transport plan including the two home legs.
// Derived data, recomputed from scratch on every planning invocation;
// Totals always equals the sum over Segments.
type TransportPlan struct {
	Segments []TransportSegment
	Totals   PlanTotals
}

// InterCityDurations returns the duration in hours of each city-to-city leg,
// in route order, excluding the two home legs. Used by the scheduler to
// account for transit time between consecutive cities.
func (p TransportPlan) InterCityDurations() []float64 {
	if len(p.Segments) < 3 {
		return nil
	}
	inner := p.Segments[1 : len(p.Segments)-1]
	out := make([]float64, 0, len(inner))
	for _, s := range inner {
		out = append(out, s.DurationH)
	}
	return out
}
