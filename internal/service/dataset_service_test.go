package service

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/broadstreet/cholera-dashboard-go/internal/database"
	"github.com/broadstreet/cholera-dashboard-go/internal/geodata"
	"github.com/broadstreet/cholera-dashboard-go/internal/models"
	"github.com/broadstreet/cholera-dashboard-go/internal/repository"
)

func newCacheRepo(t *testing.T) *repository.LayerRepository {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(db))
	return repository.NewLayerRepository(db)
}

func TestDataset_LoadsOncePerLifetime(t *testing.T) {
	dir := writeDataset(t, deathsFixture, pumpsFixture)
	svc := NewDatasetService(dir, nil)

	ds, err := svc.Dataset()
	require.NoError(t, err)
	require.Len(t, ds.Deaths, 3)

	// Changing the files afterwards does not affect the cached result
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Pumps.geojson"), []byte(emptyLayerFixture), 0o644))

	again, err := svc.Dataset()
	require.NoError(t, err)
	assert.Len(t, again.Pumps, 2)
	assert.Same(t, ds, again)
}

func TestDataset_FailureIsCached(t *testing.T) {
	svc := NewDatasetService(filepath.Join(t.TempDir(), "missing"), nil)

	ds, err := svc.Dataset()
	require.Error(t, err)
	assert.Nil(t, ds)

	// Both layers stay absent together
	ds, err = svc.Dataset()
	require.Error(t, err)
	assert.Nil(t, ds)
}

func TestDataset_WarmCachePopulatedOnLoad(t *testing.T) {
	dir := writeDataset(t, deathsFixture, pumpsFixture)
	repo := newCacheRepo(t)

	svc := NewDatasetService(dir, repo)
	ds, err := svc.Dataset()
	require.NoError(t, err)

	signature, err := geodata.Signature(dir)
	require.NoError(t, err)

	cached, err := repo.Get(signature)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, ds.Deaths, cached.Deaths)
	assert.Equal(t, ds.Pumps, cached.Pumps)
}

func TestDataset_ServedFromWarmCache(t *testing.T) {
	dir := writeDataset(t, deathsFixture, pumpsFixture)
	repo := newCacheRepo(t)

	signature, err := geodata.Signature(dir)
	require.NoError(t, err)

	// Seed the cache with a sentinel dataset under the live signature; a
	// read-through hit returns it without touching the GeoJSON
	sentinel := &models.Dataset{
		Deaths: []models.DeathRecord{{Lat: 1, Lng: 2, Count: 42, HasCount: true}},
		Pumps:  []models.PumpRecord{{Lat: 3, Lng: 4}},
	}
	require.NoError(t, repo.Put(signature, sentinel))

	svc := NewDatasetService(dir, repo)
	ds, err := svc.Dataset()
	require.NoError(t, err)
	require.Len(t, ds.Deaths, 1)
	assert.Equal(t, 42, ds.Deaths[0].Count)
}
