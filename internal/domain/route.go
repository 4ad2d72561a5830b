package domain

// Ordered visiting sequence over the input cities.
// A Route contains every distinct input city exactly once. The first and last
// elements are not implicitly "home"; home legs are synthetic and added only
// by the transport planner.
type Route []City

// CityIDs returns the route as an ordered list of city identifiers.
func (r Route) CityIDs() []string {
	ids := make([]string, 0, len(r))
	for _, c := range r {
		ids = append(ids, c.ID)
	}
	return ids
}
