package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"trip-planner-service/internal/domain"
)

// Initialize the postgres schema for the city catalog.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCitiesQuery := `
	CREATE TABLE IF NOT EXISTS cities (
		city_id   TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		latitude  DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	);
	`

	createNameIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_cities_name ON cities (name);
	`

	statements := []string{
		createCitiesQuery,
		createNameIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type CitySeed struct {
	CityID      string             `json:"city_id"`
	Name        string             `json:"name"`
	Coordinates *domain.Coordinate `json:"coordinates"`
}

// Populate the city catalog from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed cities: read %q: %w", jsonPath, err)
	}

	var data []CitySeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed cities: parse json: %w", err)
	}

	rows := make([]CitySeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.CityID)
		if id == "" {
			return fmt.Errorf("seed cities: item at index %d: city_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed cities: item at index %d: name cannot be empty", i+1)
		}

		if item.Coordinates != nil {
			if err := item.Coordinates.Validate(); err != nil {
				return fmt.Errorf("seed cities: city %q: %w", id, err)
			}
		}
		rows = append(rows, CitySeed{CityID: id, Name: name, Coordinates: item.Coordinates})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed cities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO cities (
		city_id,
		name,
		latitude,
		longitude
	)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (city_id) DO UPDATE SET
		name = EXCLUDED.name,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed cities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range rows {
		var lat, lon any
		if c.Coordinates != nil {
			lat = c.Coordinates.Latitude
			lon = c.Coordinates.Longitude
		}
		if _, err := stmt.Exec(c.CityID, c.Name, lat, lon); err != nil {
			return fmt.Errorf("seed cities: insert city_id=%s: %w", c.CityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed cities: commit tx: %w", err)
	}

	return nil
}
