package solar

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	meeussolar "github.com/soniakeys/meeus/v3/solar"
)

// Ephemeris computes the apparent position of the sun for an observer on Earth
type Ephemeris struct{}

// NewEphemeris creates a new ephemeris
func NewEphemeris() *Ephemeris {
	return &Ephemeris{}
}

// Position returns the sun's azimuth and elevation in radians as seen from
// lat/lon (degrees) at instant t. Azimuth is measured from due south,
// positive towards the west.
func (e *Ephemeris) Position(t time.Time, lat, lon float64) (azimuth, elevation float64) {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the sun
	ra, dec := meeussolar.ApparentEquatorial(jd)

	// Local apparent sidereal time = Greenwich sidereal time + east longitude
	gst := sidereal.Apparent(jd).Angle()
	lonRad := lon * math.Pi / 180
	cosLST := gst.Cos()*math.Cos(lonRad) - gst.Sin()*math.Sin(lonRad)
	sinLST := gst.Sin()*math.Cos(lonRad) + gst.Cos()*math.Sin(lonRad)

	// Hour angle H = LST - RA
	cosH := cosLST*ra.Cos() + sinLST*ra.Sin()
	sinH := sinLST*ra.Cos() - cosLST*ra.Sin()

	phi := lat * math.Pi / 180
	tanDec := dec.Sin() / dec.Cos()

	azimuth = math.Atan2(sinH, cosH*math.Sin(phi)-tanDec*math.Cos(phi))
	elevation = math.Asin(math.Sin(phi)*dec.Sin() + math.Cos(phi)*dec.Cos()*cosH)
	return azimuth, elevation
}

// Times returns sunrise and sunset in UTC for the calendar day of date
// (in date's own location) at lat/lon. Both are zero during polar day or night.
func (e *Ephemeris) Times(date time.Time, lat, lon float64) (rise, set time.Time) {
	year, month, day := date.Date()
	return sunrise.SunriseSunset(lat, lon, year, month, day)
}
