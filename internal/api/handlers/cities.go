package handlers

import (
	"log"
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
)

// CityHandler exposes read-only city catalog endpoints.
type CityHandler struct {
	Repo ports.CityRepository
}

func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cities, err := h.Repo.ListCities(r.Context())
	if err != nil {
		log.Printf("list cities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCitiesResponse{
		Cities: make([]dto.CityResponse, 0, len(cities)),
	}
	for _, c := range cities {
		city := dto.CityResponse{ID: c.ID, Name: c.Name}
		if c.Coordinates != nil {
			city.Coordinates = &dto.CoordinateInput{
				Latitude:  c.Coordinates.Latitude,
				Longitude: c.Coordinates.Longitude,
			}
		}
		res.Cities = append(res.Cities, city)
	}

	writeJSON(w, r, http.StatusOK, res)
}
