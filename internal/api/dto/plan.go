package dto

import (
	"math"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/planner"
)

type CoordinateInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CityInput struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Coordinates *CoordinateInput `json:"coordinates"`
}

type TripInput struct {
	TotalDays       int              `json:"total_days"`
	StartDate       time.Time        `json:"start_date"`
	HomeCoordinates *CoordinateInput `json:"home_coordinates"`
}

// PlanRequest carries either inline cities with coordinates or identifiers
// to resolve against the city catalog.
type PlanRequest struct {
	TripID      string      `json:"trip_id"`
	Cities      []CityInput `json:"cities"`
	CityIDs     []string    `json:"city_ids"`
	StartCityID string      `json:"start_city_id"`
	Trip        TripInput   `json:"trip"`
}

type ScheduleEntryResponse struct {
	CityID        string    `json:"city_id"`
	Arrival       time.Time `json:"arrival"`
	Departure     time.Time `json:"departure"`
	AllocatedDays int       `json:"allocated_days"`
}

type SegmentResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Method        string  `json:"method"`
	DistanceKm    float64 `json:"distance_km"`
	DurationH     float64 `json:"duration_h"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type TotalsResponse struct {
	Segments        int     `json:"segments"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	TotalDurationH  float64 `json:"total_duration_h"`
	TotalCost       float64 `json:"total_cost"`
}

type TransportPlanResponse struct {
	Segments []SegmentResponse `json:"segments"`
	Totals   TotalsResponse    `json:"totals"`
}

type PlanResponse struct {
	PlanID        string                  `json:"plan_id"`
	TripID        string                  `json:"trip_id"`
	Route         []string                `json:"route"`
	Schedule      []ScheduleEntryResponse `json:"schedule"`
	OverBudget    bool                    `json:"over_budget"`
	TransportPlan TransportPlanResponse   `json:"transport_plan"`
}

// round2 trims estimates to two decimals at the API boundary; the core keeps
// full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FromTripPlan maps a computed plan onto the response contract.
func FromTripPlan(planID, tripID string, p *planner.TripPlan) PlanResponse {
	res := PlanResponse{
		PlanID:     planID,
		TripID:     tripID,
		Route:      p.Route.CityIDs(),
		Schedule:   make([]ScheduleEntryResponse, 0, len(p.Schedule.Entries)),
		OverBudget: p.Schedule.OverBudget,
	}

	for _, e := range p.Schedule.Entries {
		res.Schedule = append(res.Schedule, ScheduleEntryResponse{
			CityID:        e.CityID,
			Arrival:       e.Arrival,
			Departure:     e.Departure,
			AllocatedDays: e.AllocatedDays,
		})
	}

	segs := make([]SegmentResponse, 0, len(p.Transport.Segments))
	for _, s := range p.Transport.Segments {
		segs = append(segs, SegmentResponse{
			From:          s.FromCityID,
			To:            s.ToCityID,
			Method:        string(s.Method),
			DistanceKm:    round2(s.DistanceKm),
			DurationH:     round2(s.DurationH),
			EstimatedCost: round2(s.EstimatedCost),
		})
	}

	res.TransportPlan = TransportPlanResponse{
		Segments: segs,
		Totals: TotalsResponse{
			Segments:        p.Transport.Totals.Segments,
			TotalDistanceKm: round2(p.Transport.Totals.TotalDistanceKm),
			TotalDurationH:  round2(p.Transport.Totals.TotalDurationH),
			TotalCost:       round2(p.Transport.Totals.TotalCost),
		},
	}

	return res
}

// ToDomainCity converts an inline city input.
func (c CityInput) ToDomainCity() domain.City {
	city := domain.City{ID: c.ID, Name: c.Name}
	if c.Coordinates != nil {
		city.Coordinates = &domain.Coordinate{
			Latitude:  c.Coordinates.Latitude,
			Longitude: c.Coordinates.Longitude,
		}
	}
	return city
}

// ToDomainParams converts the trip parameters input.
func (t TripInput) ToDomainParams() domain.TripParameters {
	params := domain.TripParameters{
		TotalDays: t.TotalDays,
		StartDate: t.StartDate,
	}
	if t.HomeCoordinates != nil {
		params.HomeCoordinates = &domain.Coordinate{
			Latitude:  t.HomeCoordinates.Latitude,
			Longitude: t.HomeCoordinates.Longitude,
		}
	}
	return params
}
