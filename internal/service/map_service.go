package service

import (
	"fmt"

	"github.com/broadstreet/cholera-dashboard-go/internal/models"
	"github.com/broadstreet/cholera-dashboard-go/internal/spatial"
)

// DefaultZoom matches the street-level view of the Broad Street area
const DefaultZoom = 17

// heatGradient maps normalized density to colors, orange through darkred
var heatGradient = map[string]string{
	"0.2": "orange",
	"0.5": "red",
	"0.8": "darkred",
}

const heatMinOpacity = 0.3

// MapService composes the map document from the loaded layers
type MapService struct {
	datasets *DatasetService
}

// NewMapService creates a new map service
func NewMapService(datasets *DatasetService) *MapService {
	return &MapService{datasets: datasets}
}

// ComposeMap builds the map document for the given display options.
// Layer order is fixed: heat layer, death markers, pump markers with
// labels; the page stacks them in that order so later layers draw on top.
func (s *MapService) ComposeMap(opts models.MapOptions) (*models.MapDocument, error) {
	opts.Clamp()

	ds, err := s.datasets.Dataset()
	if err != nil {
		return nil, err
	}

	center := mapCenter(ds)
	doc := &models.MapDocument{
		CenterLat:   center.Lat,
		CenterLng:   center.Lon,
		Zoom:        DefaultZoom,
		PumpMarkers: make([]models.Marker, 0, len(ds.Pumps)),
		Options:     opts,
	}

	if opts.ShowHeatmap {
		heat := &models.HeatLayer{
			Points:     make([]models.HeatmapPoint, 0, len(ds.Deaths)),
			Radius:     opts.HeatmapRadius,
			Blur:       opts.HeatmapBlur,
			MinOpacity: heatMinOpacity,
			MaxOpacity: opts.HeatmapOpacity,
			Gradient:   heatGradient,
		}
		for _, rec := range ds.Deaths {
			heat.Points = append(heat.Points, models.HeatmapPoint{
				Lat:    rec.Lat,
				Lng:    rec.Lng,
				Weight: float64(rec.Count),
			})
		}
		doc.Heat = heat
	}

	if opts.ShowDeathMarkers {
		doc.DeathMarkers = make([]models.Marker, 0, len(ds.Deaths))
		for i, rec := range ds.Deaths {
			popup := fmt.Sprintf("<b>Cholera Death #%d</b>", i+1)
			if rec.HasCount {
				popup += fmt.Sprintf("<br>Count: %d", rec.Count)
			}
			doc.DeathMarkers = append(doc.DeathMarkers, models.Marker{
				Lat:     rec.Lat,
				Lng:     rec.Lng,
				Popup:   popup,
				Tooltip: fmt.Sprintf("Cholera Death %d", i+1),
			})
		}
	}

	for i, rec := range ds.Pumps {
		marker := models.Marker{
			Lat:     rec.Lat,
			Lng:     rec.Lng,
			Popup:   fmt.Sprintf("<b>Water Pump #%d</b>", i+1),
			Tooltip: fmt.Sprintf("Water Pump %d", i+1),
		}
		if opts.ShowPumpLabels {
			marker.Label = fmt.Sprintf("Pump %d", i+1)
		}
		doc.PumpMarkers = append(doc.PumpMarkers, marker)
	}

	return doc, nil
}

// mapCenter is the centroid of the death points, falling back to the pump
// centroid when the deaths layer is empty
func mapCenter(ds *models.Dataset) spatial.Point {
	if len(ds.Deaths) > 0 {
		points := make([]spatial.Point, 0, len(ds.Deaths))
		for _, rec := range ds.Deaths {
			points = append(points, spatial.Point{Lat: rec.Lat, Lon: rec.Lng})
		}
		return spatial.Centroid(points)
	}

	points := make([]spatial.Point, 0, len(ds.Pumps))
	for _, rec := range ds.Pumps {
		points = append(points, spatial.Point{Lat: rec.Lat, Lon: rec.Lng})
	}
	return spatial.Centroid(points)
}
