package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jengzang/shadowside-backend-go/internal/models"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// GeocodeCacheRepository handles database operations for resolved locations
type GeocodeCacheRepository struct {
	db *sql.DB
}

// NewGeocodeCacheRepository creates a new geocode cache repository
func NewGeocodeCacheRepository(db *sql.DB) *GeocodeCacheRepository {
	return &GeocodeCacheRepository{db: db}
}

// Get retrieves a cached location by its normalized query and bumps its hit count
func (r *GeocodeCacheRepository) Get(ctx context.Context, query string) (*models.GeocodeCacheEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, query, latitude, longitude, display_name, provider,
			   hit_count, created_at, updated_at
		FROM geocode_cache
		WHERE query = ?
	`, query)

	entry := &models.GeocodeCacheEntry{}
	err := row.Scan(
		&entry.ID,
		&entry.Query,
		&entry.Latitude,
		&entry.Longitude,
		&entry.DisplayName,
		&entry.Provider,
		&entry.HitCount,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("geocode cache entry %q: %w", query, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get geocode cache entry: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, "UPDATE geocode_cache SET hit_count = hit_count + 1 WHERE id = ?", entry.ID); err != nil {
		return nil, fmt.Errorf("failed to update hit count: %w", err)
	}
	entry.HitCount++

	return entry, nil
}

// Save inserts or refreshes a cached location
func (r *GeocodeCacheRepository) Save(ctx context.Context, entry *models.GeocodeCacheEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO geocode_cache (query, latitude, longitude, display_name, provider)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(query) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			display_name = excluded.display_name,
			provider = excluded.provider,
			updated_at = CURRENT_TIMESTAMP
	`,
		entry.Query,
		entry.Latitude,
		entry.Longitude,
		entry.DisplayName,
		entry.Provider,
	)
	if err != nil {
		return fmt.Errorf("failed to save geocode cache entry: %w", err)
	}
	return nil
}

// List retrieves cached locations, most recently updated first
func (r *GeocodeCacheRepository) List(ctx context.Context, limit, offset int) ([]*models.GeocodeCacheEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, query, latitude, longitude, display_name, provider,
			   hit_count, created_at, updated_at
		FROM geocode_cache
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list geocode cache: %w", err)
	}
	defer rows.Close()

	var entries []*models.GeocodeCacheEntry
	for rows.Next() {
		entry := &models.GeocodeCacheEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Query,
			&entry.Latitude,
			&entry.Longitude,
			&entry.DisplayName,
			&entry.Provider,
			&entry.HitCount,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan geocode cache entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Count returns the number of cached locations
func (r *GeocodeCacheRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM geocode_cache").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count geocode cache: %w", err)
	}
	return count, nil
}

// Delete removes a cached location
func (r *GeocodeCacheRepository) Delete(ctx context.Context, query string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM geocode_cache WHERE query = ?", query)
	if err != nil {
		return fmt.Errorf("failed to delete geocode cache entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("geocode cache entry %q: %w", query, ErrNotFound)
	}
	return nil
}
