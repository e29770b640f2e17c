package models

import "time"

// GeocodeCacheEntry is a resolved free-text location kept in the local cache
type GeocodeCacheEntry struct {
	ID          int64     `json:"id" db:"id"`
	Query       string    `json:"query" db:"query"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	DisplayName string    `json:"display_name,omitempty" db:"display_name"`
	Provider    string    `json:"provider" db:"provider"`
	HitCount    int       `json:"hit_count" db:"hit_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Point returns the cached coordinate
func (e *GeocodeCacheEntry) Point() GeoPoint {
	return GeoPoint{Lat: e.Latitude, Lon: e.Longitude}
}
