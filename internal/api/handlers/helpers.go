package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"trip-planner-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writePlanningError maps pipeline validation failures to 400s and everything
// else to an opaque 500.
func writePlanningError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinate),
		errors.Is(err, domain.ErrEmptyCityList),
		errors.Is(err, domain.ErrEmptyRoute),
		errors.Is(err, domain.ErrNonPositiveDays):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
