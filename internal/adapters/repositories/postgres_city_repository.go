package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// Postgres-backed implementation of the CityRepository port.
type PostgresCityRepository struct{ DB *sql.DB }

func NewPostgresCityRepository(db *sql.DB) *PostgresCityRepository {
	return &PostgresCityRepository{DB: db}
}

// Return all catalog cities ordered by identifier.
func (p *PostgresCityRepository) ListCities(ctx context.Context) (_ []domain.City, err error) {
	defer obs.Time(ctx, "cities.repo.ListCities")(&err)

	if p.DB == nil {
		return nil, errors.New("city repository: DB is nil")
	}

	query := `
	SELECT
		city_id,
		name,
		latitude,
		longitude
	FROM cities
	ORDER BY city_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cities: query cities table: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}

// Return catalog cities matching the given identifiers.
func (p *PostgresCityRepository) GetCities(ctx context.Context, ids []string) (_ []domain.City, err error) {
	defer obs.Time(ctx, "cities.repo.GetCities")(&err)

	if p.DB == nil {
		return nil, errors.New("city repository: DB is nil")
	}

	if len(ids) == 0 {
		return []domain.City{}, nil
	}

	query := `
	SELECT
		city_id,
		name,
		latitude,
		longitude
	FROM cities
	WHERE city_id = ANY($1::text[])
	ORDER BY city_id;
	`
	rows, err := p.DB.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get cities: query cities table: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}

func scanCities(rows *sql.Rows) ([]domain.City, error) {
	cities := make([]domain.City, 0, 64)
	for rows.Next() {
		var id, name string
		var lat, lon sql.NullFloat64

		if err := rows.Scan(&id, &name, &lat, &lon); err != nil {
			return nil, fmt.Errorf("scan city row: %w", err)
		}

		city := domain.City{ID: id, Name: name}
		// Cities without stored coordinates stay in the catalog but cannot be
		// routed; the planner rejects them unless the caller filters first.
		if lat.Valid && lon.Valid {
			city.Coordinates = &domain.Coordinate{Latitude: lat.Float64, Longitude: lon.Float64}
		}
		cities = append(cities, city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("city row iteration: %w", err)
	}

	return cities, nil
}
