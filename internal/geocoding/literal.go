package geocoding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jengzang/shadowside-backend-go/internal/models"
)

var latLonPattern = regexp.MustCompile(`^-?\d+(\.\d+)?\s*,\s*-?\d+(\.\d+)?$`)

// ParseLatLon recognizes a literal "lat,lon" pair such as "12.97, 77.59".
// The second return value is false if input is not in that form.
func ParseLatLon(input string) (models.GeoPoint, bool) {
	input = strings.TrimSpace(input)
	if !latLonPattern.MatchString(input) {
		return models.GeoPoint{}, false
	}

	parts := strings.SplitN(input, ",", 2)
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.GeoPoint{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.GeoPoint{}, false
	}

	return models.GeoPoint{Lat: lat, Lon: lon}, true
}
