package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroid(t *testing.T) {
	assert.Equal(t, Point{}, Centroid(nil))

	points := []Point{
		{Lat: 51.0, Lon: -0.1},
		{Lat: 52.0, Lon: -0.3},
	}
	c := Centroid(points)
	assert.InDelta(t, 51.5, c.Lat, 1e-9)
	assert.InDelta(t, -0.2, c.Lon, 1e-9)

	single := Centroid([]Point{{Lat: 51.5133, Lon: -0.1369}})
	assert.Equal(t, Point{Lat: 51.5133, Lon: -0.1369}, single)
}

func TestBoundingBox(t *testing.T) {
	minLat, minLon, maxLat, maxLon := BoundingBox(nil)
	assert.Zero(t, minLat)
	assert.Zero(t, minLon)
	assert.Zero(t, maxLat)
	assert.Zero(t, maxLon)

	points := []Point{
		{Lat: 51.2, Lon: -0.3},
		{Lat: 51.9, Lon: -0.1},
		{Lat: 51.5, Lon: -0.5},
	}
	minLat, minLon, maxLat, maxLon = BoundingBox(points)
	assert.Equal(t, 51.2, minLat)
	assert.Equal(t, -0.5, minLon)
	assert.Equal(t, 51.9, maxLat)
	assert.Equal(t, -0.1, maxLon)
}

func TestHaversineDistance(t *testing.T) {
	// Zero distance to itself
	assert.Zero(t, HaversineDistance(51.5133, -0.1369, 51.5133, -0.1369))

	// One degree of latitude is about 111.2 km on the mean sphere
	d := HaversineDistance(51.0, 0, 52.0, 0)
	assert.InDelta(t, 111195, d, 100)

	// Symmetric
	assert.InDelta(t,
		HaversineDistance(51.5133, -0.1369, 51.5117, -0.1316),
		HaversineDistance(51.5117, -0.1316, 51.5133, -0.1369),
		1e-9,
	)
}
