package domain

import (
	"fmt"
	"time"
)

// Caller-owned trip parameters. Passed by value into the scheduler and
// transport planner; never mutated by the planning pipeline.
type TripParameters struct {
	TotalDays       int
	StartDate       time.Time
	HomeCoordinates *Coordinate
}

func (p TripParameters) Validate() error {
	if p.TotalDays < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveDays, p.TotalDays)
	}
	if p.HomeCoordinates != nil {
		if err := p.HomeCoordinates.Validate(); err != nil {
			return fmt.Errorf("home coordinates: %w", err)
		}
	}
	return nil
}
