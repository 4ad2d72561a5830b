package dto

type CityResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Coordinates *CoordinateInput `json:"coordinates,omitempty"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}
