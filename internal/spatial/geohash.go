package spatial

import "github.com/jengzang/shadowside-backend-go/internal/models"

// Base32 encoding for geohash
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// Geohash encodes p as a geohash of precision characters (1-12).
// Precision 9 is a cell of roughly 4.8 x 4.8 m.
func Geohash(p models.GeoPoint, precision int) string {
	if precision < 1 {
		precision = 1
	}
	if precision > 12 {
		precision = 12
	}

	latLo, latHi := -90.0, 90.0
	lonLo, lonHi := -180.0, 180.0

	hash := make([]byte, 0, precision)
	even := true
	ch, bits := 0, 0

	for len(hash) < precision {
		ch <<= 1
		if even {
			mid := (lonLo + lonHi) / 2
			if p.Lon > mid {
				ch |= 1
				lonLo = mid
			} else {
				lonHi = mid
			}
		} else {
			mid := (latLo + latHi) / 2
			if p.Lat > mid {
				ch |= 1
				latLo = mid
			} else {
				latHi = mid
			}
		}
		even = !even

		if bits++; bits == 5 {
			hash = append(hash, base32[ch])
			ch, bits = 0, 0
		}
	}

	return string(hash)
}
