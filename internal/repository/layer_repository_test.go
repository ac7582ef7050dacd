package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/broadstreet/cholera-dashboard-go/internal/database"
	"github.com/broadstreet/cholera-dashboard-go/internal/models"
)

func newTestRepo(t *testing.T) *LayerRepository {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(db))
	return NewLayerRepository(db)
}

func testDataset() *models.Dataset {
	return &models.Dataset{
		Deaths: []models.DeathRecord{
			{Lat: 51.51330, Lng: -0.13680, Count: 3, HasCount: true},
			{Lat: 51.51340, Lng: -0.13700, Count: 1},
		},
		Pumps: []models.PumpRecord{
			{Lat: 51.51334, Lng: -0.13674},
		},
	}
}

func TestLayerRepository_Roundtrip(t *testing.T) {
	repo := newTestRepo(t)
	ds := testDataset()

	require.NoError(t, repo.Put("sig-1", ds))

	got, err := repo.Get("sig-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ds.Deaths, got.Deaths)
	assert.Equal(t, ds.Pumps, got.Pumps)
}

func TestLayerRepository_Miss(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Get("unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayerRepository_PutReplacesPreviousGeneration(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Put("sig-old", testDataset()))

	fresh := &models.Dataset{
		Deaths: []models.DeathRecord{{Lat: 1, Lng: 2, Count: 1}},
	}
	require.NoError(t, repo.Put("sig-new", fresh))

	// Old generation is gone
	got, err := repo.Get("sig-old")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.Get("sig-new")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Deaths, 1)
	assert.Empty(t, got.Pumps)
}

func TestLayerRepository_EmptyDataset(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Put("sig-empty", &models.Dataset{}))

	got, err := repo.Get("sig-empty")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Deaths)
	assert.Empty(t, got.Pumps)
}
