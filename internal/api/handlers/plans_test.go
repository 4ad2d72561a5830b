package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

type stubCityRepo struct {
	cities map[string]domain.City
}

func (s *stubCityRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	out := make([]domain.City, 0, len(s.cities))
	for _, c := range s.cities {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCityRepo) GetCities(ctx context.Context, ids []string) ([]domain.City, error) {
	out := make([]domain.City, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.cities[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func testPlanHandler() *PlanHandler {
	repo := &stubCityRepo{cities: map[string]domain.City{
		"bangkok":    {ID: "bangkok", Name: "Bangkok", Coordinates: &domain.Coordinate{Latitude: 13.75, Longitude: 100.49}},
		"ayutthaya":  {ID: "ayutthaya", Name: "Ayutthaya", Coordinates: &domain.Coordinate{Latitude: 14.35, Longitude: 100.56}},
		"chiang-mai": {ID: "chiang-mai", Name: "Chiang Mai", Coordinates: &domain.Coordinate{Latitude: 18.79, Longitude: 98.97}},
		"no-coords":  {ID: "no-coords", Name: "No Coords"},
	}}
	return NewPlanHandler(repo, config.Default(), geo.NewKeywordIslandClassifier())
}

func postPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanHandlerInlineCities(t *testing.T) {
	body := `{
		"cities": [
			{"id":"bangkok","name":"Bangkok","coordinates":{"latitude":13.75,"longitude":100.49}},
			{"id":"ayutthaya","name":"Ayutthaya","coordinates":{"latitude":14.35,"longitude":100.56}},
			{"id":"chiang-mai","name":"Chiang Mai","coordinates":{"latitude":18.79,"longitude":98.97}}
		],
		"trip": {"total_days": 9, "start_date": "2025-10-01T00:00:00Z", "home_coordinates": null}
	}`

	rec := postPlan(t, testPlanHandler(), body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.PlanID == "" || res.TripID == "" {
		t.Error("expected generated plan and trip identifiers")
	}

	want := []string{"bangkok", "ayutthaya", "chiang-mai"}
	if len(res.Route) != len(want) {
		t.Fatalf("route = %v, want %v", res.Route, want)
	}
	for i := range want {
		if res.Route[i] != want[i] {
			t.Fatalf("route = %v, want %v", res.Route, want)
		}
	}

	if len(res.TransportPlan.Segments) != 4 {
		t.Fatalf("segments = %d, want 4", len(res.TransportPlan.Segments))
	}
	if res.TransportPlan.Totals.Segments != 4 {
		t.Fatalf("totals.segments = %d, want 4", res.TransportPlan.Totals.Segments)
	}
	if len(res.Schedule) != 3 {
		t.Fatalf("schedule entries = %d, want 3", len(res.Schedule))
	}
}

func TestPlanHandlerCatalogCities(t *testing.T) {
	body := `{
		"city_ids": ["bangkok", "chiang-mai"],
		"trip": {"total_days": 4, "start_date": "2025-10-01T00:00:00Z"}
	}`

	rec := postPlan(t, testPlanHandler(), body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Route) != 2 {
		t.Fatalf("route = %v, want 2 cities", res.Route)
	}
}

func TestPlanHandlerUnknownCatalogCity(t *testing.T) {
	body := `{
		"city_ids": ["bangkok", "atlantis"],
		"trip": {"total_days": 4, "start_date": "2025-10-01T00:00:00Z"}
	}`

	rec := postPlan(t, testPlanHandler(), body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "atlantis") {
		t.Fatalf("error should name the unknown city, got %s", rec.Body.String())
	}
}

func TestPlanHandlerCityWithoutCoordinates(t *testing.T) {
	body := `{
		"city_ids": ["bangkok", "no-coords"],
		"trip": {"total_days": 4, "start_date": "2025-10-01T00:00:00Z"}
	}`

	rec := postPlan(t, testPlanHandler(), body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no-coords") {
		t.Fatalf("error should name the city, got %s", rec.Body.String())
	}
}

func TestPlanHandlerValidationErrors(t *testing.T) {
	h := testPlanHandler()

	cases := []struct {
		name string
		body string
	}{
		{"no cities", `{"trip": {"total_days": 4, "start_date": "2025-10-01T00:00:00Z"}}`},
		{"zero days", `{"city_ids": ["bangkok"], "trip": {"total_days": 0, "start_date": "2025-10-01T00:00:00Z"}}`},
		{"bad json", `{not json`},
		{"unknown field", `{"bogus": 1, "trip": {"total_days": 4, "start_date": "2025-10-01T00:00:00Z"}}`},
	}

	for _, tc := range cases {
		rec := postPlan(t, h, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	testPlanHandler().Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow header = %q, want POST", got)
	}
}

func TestTripLockerSerializesSameTrip(t *testing.T) {
	l := newTripLocker()

	unlock := l.Lock("trip-1")

	done := make(chan struct{})
	go func() {
		u := l.Lock("trip-1")
		u()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second lock acquired while first still held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	<-done
}
