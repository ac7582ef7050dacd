package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const deathsFixture = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "properties": {"Count": 3}, "geometry": {"type": "Point", "coordinates": [-0.13680, 51.51330]}},
		{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [-0.13700, 51.51340]}},
		{"type": "Feature", "properties": {"Count": 2}, "geometry": {"type": "Point", "coordinates": [-0.13170, 51.51180]}}
	]
}`

const pumpsFixture = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [-0.13674, 51.51334]}},
		{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [-0.13163, 51.51172]}}
	]
}`

const emptyLayerFixture = `{"type": "FeatureCollection", "features": []}`

// writeDataset lays out a dataset directory with both named layers
func writeDataset(t *testing.T, deaths, pumps string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cholera_Deaths.geojson"), []byte(deaths), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Pumps.geojson"), []byte(pumps), 0o644))
	return dir
}

// newTestDatasets builds a DatasetService over a fixture directory,
// without the sqlite warm cache
func newTestDatasets(t *testing.T, deaths, pumps string) *DatasetService {
	t.Helper()
	return NewDatasetService(writeDataset(t, deaths, pumps), nil)
}
