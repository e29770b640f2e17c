package models

import "fmt"

// GeoPoint is a WGS84 coordinate in decimal degrees
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat" db:"latitude"`
	Lon float64 `json:"lon" yaml:"lon" db:"longitude"`
}

// Valid reports whether the point lies inside the latitude/longitude ranges
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// String formats the point as "lat,lon"
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}

// Place is a resolved location
type Place struct {
	Point       GeoPoint `json:"point" yaml:"point"`
	DisplayName string   `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Source      string   `json:"source" yaml:"source"` // literal, cache or provider name
}
