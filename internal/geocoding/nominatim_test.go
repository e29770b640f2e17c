package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/jengzang/shadowside-backend-go/internal/database"
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNominatimServer(t *testing.T, body string, status int, hits *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
		assert.Equal(t, "shadowside-test", r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNominatimGeocode(t *testing.T) {
	server := newNominatimServer(t, `[{"lat":"12.9716","lon":"77.5946","display_name":"Bengaluru, Karnataka, India"}]`, http.StatusOK, nil)
	client := NewNominatimClient(server.URL, "shadowside-test", server.Client())

	place, err := client.Geocode(context.Background(), "Bangalore")
	require.NoError(t, err)
	assert.Equal(t, models.GeoPoint{Lat: 12.9716, Lon: 77.5946}, place.Point)
	assert.Equal(t, "Bengaluru, Karnataka, India", place.DisplayName)
	assert.Equal(t, "nominatim", place.Source)
}

func TestNominatimNotFound(t *testing.T) {
	server := newNominatimServer(t, `[]`, http.StatusOK, nil)
	client := NewNominatimClient(server.URL, "shadowside-test", server.Client())

	_, err := client.Geocode(context.Background(), "Nowhere at all")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNominatimTransportErrors(t *testing.T) {
	server := newNominatimServer(t, `oops`, http.StatusInternalServerError, nil)
	client := NewNominatimClient(server.URL, "shadowside-test", server.Client())

	_, err := client.Geocode(context.Background(), "Bangalore")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	server = newNominatimServer(t, `{not json`, http.StatusOK, nil)
	client = NewNominatimClient(server.URL, "shadowside-test", server.Client())
	_, err = client.Geocode(context.Background(), "Bangalore")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNominatimLiteralSkipsNetwork(t *testing.T) {
	var hits int32
	server := newNominatimServer(t, `[]`, http.StatusOK, &hits)
	client := NewNominatimClient(server.URL, "shadowside-test", server.Client())

	place, err := client.Geocode(context.Background(), "12.5, 77.25")
	require.NoError(t, err)
	assert.Equal(t, models.GeoPoint{Lat: 12.5, Lon: 77.25}, place.Point)
	assert.Equal(t, "literal", place.Source)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestCachedGeocoder(t *testing.T) {
	var hits int32
	server := newNominatimServer(t, `[{"lat":"12.9716","lon":"77.5946","display_name":"Bengaluru"}]`, http.StatusOK, &hits)

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	geocoder := NewCachedGeocoder(
		NewNominatimClient(server.URL, "shadowside-test", server.Client()),
		repository.NewGeocodeCacheRepository(db),
	)
	ctx := context.Background()

	place, err := geocoder.Geocode(ctx, "Bangalore")
	require.NoError(t, err)
	assert.Equal(t, "nominatim", place.Source)

	// Case and whitespace differences share a cache entry
	place, err = geocoder.Geocode(ctx, "  bangalore ")
	require.NoError(t, err)
	assert.Equal(t, "cache", place.Source)
	assert.Equal(t, models.GeoPoint{Lat: 12.9716, Lon: 77.5946}, place.Point)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	place, err = geocoder.Geocode(ctx, "1.5,2.5")
	require.NoError(t, err)
	assert.Equal(t, "literal", place.Source)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCachedGeocoderDoesNotCacheMisses(t *testing.T) {
	var hits int32
	server := newNominatimServer(t, `[]`, http.StatusOK, &hits)

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	geocoder := NewCachedGeocoder(
		NewNominatimClient(server.URL, "shadowside-test", server.Client()),
		repository.NewGeocodeCacheRepository(db),
	)

	for i := 0; i < 2; i++ {
		_, err := geocoder.Geocode(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestCachedGeocoderSkipsOutOfRange(t *testing.T) {
	var hits int32
	server := newNominatimServer(t, `[{"lat":"95.0","lon":"200.0","display_name":"Nowhere"}]`, http.StatusOK, &hits)

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewGeocodeCacheRepository(db)
	geocoder := NewCachedGeocoder(NewNominatimClient(server.URL, "shadowside-test", server.Client()), repo)

	for i := 0; i < 2; i++ {
		place, err := geocoder.Geocode(context.Background(), "Nowhere")
		require.NoError(t, err)
		assert.Equal(t, "nominatim", place.Source)
		assert.False(t, place.Point.Valid())
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
