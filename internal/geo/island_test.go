package geo

import (
	"testing"

	"trip-planner-service/internal/domain"
)

func TestKeywordIslandClassifier(t *testing.T) {
	c := NewKeywordIslandClassifier()

	cases := []struct {
		name   string
		island bool
	}{
		{"Isla Mujeres", true},
		{"Long Island City", true},
		{"Phuket", true},
		{"Santorini", true},
		{"Bangkok", false},
		{"Madrid", false},
		{"", false},
	}

	for _, tc := range cases {
		got := c.IsIsland(domain.City{ID: tc.name, Name: tc.name})
		if got != tc.island {
			t.Errorf("IsIsland(%q) = %v, want %v", tc.name, got, tc.island)
		}
	}
}

func TestKeywordIslandClassifierCaseInsensitive(t *testing.T) {
	c := NewKeywordIslandClassifier()

	if !c.IsIsland(domain.City{Name: "HONOLULU"}) {
		t.Fatal("expected HONOLULU to classify as island")
	}
	if !c.IsIsland(domain.City{Name: "  Ibiza  "}) {
		t.Fatal("expected padded Ibiza to classify as island")
	}
}
