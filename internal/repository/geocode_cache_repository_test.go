package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jengzang/shadowside-backend-go/internal/database"
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *GeocodeCacheRepository {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "cache.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewGeocodeCacheRepository(db)
}

func TestGeocodeCacheSaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "mg road, bangalore")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Save(ctx, &models.GeocodeCacheEntry{
		Query:       "mg road, bangalore",
		Latitude:    12.9756,
		Longitude:   77.6066,
		DisplayName: "MG Road, Bengaluru",
		Provider:    "nominatim",
	}))

	entry, err := repo.Get(ctx, "mg road, bangalore")
	require.NoError(t, err)
	assert.Equal(t, models.GeoPoint{Lat: 12.9756, Lon: 77.6066}, entry.Point())
	assert.Equal(t, "MG Road, Bengaluru", entry.DisplayName)
	assert.Equal(t, 1, entry.HitCount)

	entry, err = repo.Get(ctx, "mg road, bangalore")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.HitCount)
}

func TestGeocodeCacheSaveUpserts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entry := &models.GeocodeCacheEntry{Query: "indiranagar", Latitude: 1, Longitude: 2, Provider: "nominatim"}
	require.NoError(t, repo.Save(ctx, entry))

	entry.Latitude = 12.97
	entry.Longitude = 77.64
	require.NoError(t, repo.Save(ctx, entry))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.Get(ctx, "indiranagar")
	require.NoError(t, err)
	assert.Equal(t, 12.97, got.Latitude)
	assert.Equal(t, 77.64, got.Longitude)
}

func TestGeocodeCacheListAndDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, &models.GeocodeCacheEntry{Query: q, Provider: "nominatim"}))
	}

	entries, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, repo.Delete(ctx, "b"))
	assert.ErrorIs(t, repo.Delete(ctx, "b"), ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
