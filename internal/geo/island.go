package geo

import (
	"strings"

	"trip-planner-service/internal/domain"
)

// IslandClassifier decides whether a city is an island location.
// Implementations are best-effort: false negatives are acceptable and
// classification must never fail.
type IslandClassifier interface {
	IsIsland(city domain.City) bool
}

// KeywordIslandClassifier matches island-related keywords in the city name,
// falling back to a small list of well-known island cities. It is a coarse
// heuristic kept behind the IslandClassifier interface so a geodata-backed
// implementation can replace it without touching mode selection.
type KeywordIslandClassifier struct {
	keywords   []string
	knownNames map[string]struct{}
}

func NewKeywordIslandClassifier() *KeywordIslandClassifier {
	known := []string{
		"palma de mallorca",
		"ibiza",
		"santorini",
		"mykonos",
		"honolulu",
		"bali",
		"phuket",
		"koh samui",
		"funchal",
	}

	m := make(map[string]struct{}, len(known))
	for _, n := range known {
		m[n] = struct{}{}
	}

	return &KeywordIslandClassifier{
		keywords:   []string{"island", "isla", "islas", "archipelago", "archipiélago"},
		knownNames: m,
	}
}

func (k *KeywordIslandClassifier) IsIsland(city domain.City) bool {
	name := strings.ToLower(strings.TrimSpace(city.Name))
	if name == "" {
		return false
	}

	if _, ok := k.knownNames[name]; ok {
		return true
	}

	for _, kw := range k.keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
