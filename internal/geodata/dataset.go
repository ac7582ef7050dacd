package geodata

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/broadstreet/cholera-dashboard-go/internal/models"
)

// Layer names expected inside the dataset directory
const (
	DeathsLayerName = "Cholera_Deaths"
	PumpsLayerName  = "Pumps"

	countProperty = "Count"
)

var layerExtensions = []string{".geojson", ".json"}

// Load reads both named layers from the dataset directory and normalizes
// them to WGS84. Loading is all-or-nothing: any failure discards both
// layers and returns a single error.
func Load(dir string) (*models.Dataset, error) {
	deathsFC, deathsCRS, err := loadLayer(dir, DeathsLayerName)
	if err != nil {
		return nil, err
	}
	pumpsFC, pumpsCRS, err := loadLayer(dir, PumpsLayerName)
	if err != nil {
		return nil, err
	}

	ds := &models.Dataset{
		Deaths: make([]models.DeathRecord, 0, len(deathsFC.Features)),
		Pumps:  make([]models.PumpRecord, 0, len(pumpsFC.Features)),
	}

	for i, f := range deathsFC.Features {
		pt, ok := ResolvePoint(f.Geometry)
		if !ok {
			return nil, fmt.Errorf("layer %s: feature %d has no resolvable point geometry", DeathsLayerName, i)
		}
		lat, lng := deathsCRS.ToWGS84(pt.X(), pt.Y())

		count, hasCount := 1, false
		if v, present := f.Properties[countProperty]; present {
			if n, numeric := v.(float64); numeric {
				count = int(n)
				hasCount = true
			}
		}

		ds.Deaths = append(ds.Deaths, models.DeathRecord{
			Lat:      lat,
			Lng:      lng,
			Count:    count,
			HasCount: hasCount,
		})
	}

	for i, f := range pumpsFC.Features {
		pt, ok := ResolvePoint(f.Geometry)
		if !ok {
			return nil, fmt.Errorf("layer %s: feature %d has no resolvable point geometry", PumpsLayerName, i)
		}
		lat, lng := pumpsCRS.ToWGS84(pt.X(), pt.Y())
		ds.Pumps = append(ds.Pumps, models.PumpRecord{Lat: lat, Lng: lng})
	}

	return ds, nil
}

// ResolvePoint answers whether a geometry exposes a resolvable point and
// returns it. Point geometries resolve directly; coordinate-sequence
// geometries resolve to their first coordinate. All layer builders share
// this one capability check.
func ResolvePoint(g orb.Geometry) (orb.Point, bool) {
	switch geom := g.(type) {
	case orb.Point:
		return geom, true
	case orb.MultiPoint:
		if len(geom) > 0 {
			return geom[0], true
		}
	case orb.LineString:
		if len(geom) > 0 {
			return geom[0], true
		}
	}
	return orb.Point{}, false
}

// Signature fingerprints the dataset directory for the warm cache:
// layer file names, sizes and modification times. An unchanged dataset
// produces the same signature across process restarts.
func Signature(dir string) (string, error) {
	var parts []string
	for _, name := range []string{DeathsLayerName, PumpsLayerName} {
		path, err := findLayerFile(dir, name)
		if err != nil {
			return "", err
		}
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("failed to stat layer %s: %w", name, err)
		}
		parts = append(parts, fmt.Sprintf("%s:%d:%d", filepath.Base(path), info.Size(), info.ModTime().UnixNano()))
	}
	sort.Strings(parts)

	sum := sha256.Sum256([]byte(dir + "|" + strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:]), nil
}

// loadLayer reads one named layer and determines its source CRS
func loadLayer(dir, name string) (*geojson.FeatureCollection, CRS, error) {
	path, err := findLayerFile(dir, name)
	if err != nil {
		return nil, CRS{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CRS{}, fmt.Errorf("failed to read layer %s: %w", name, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, CRS{}, fmt.Errorf("failed to parse layer %s: %w", name, err)
	}

	crs, err := layerCRS(data)
	if err != nil {
		return nil, CRS{}, fmt.Errorf("layer %s: %w", name, err)
	}

	return fc, crs, nil
}

// findLayerFile locates <name>.geojson or <name>.json in dir, matching the
// layer name case-insensitively
func findLayerFile(dir, name string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open dataset directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		for _, allowed := range layerExtensions {
			if ext == allowed && strings.EqualFold(base, name) {
				return filepath.Join(dir, entry.Name()), nil
			}
		}
	}

	return "", fmt.Errorf("layer %s not found in %s", name, dir)
}

// layerCRS extracts the legacy top-level crs member, defaulting to WGS84
func layerCRS(data []byte) (CRS, error) {
	var envelope struct {
		CRS *struct {
			Properties struct {
				Name string `json:"name"`
			} `json:"properties"`
		} `json:"crs"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return CRS{}, err
	}
	if envelope.CRS == nil {
		return WGS84, nil
	}
	return ParseCRSName(envelope.CRS.Properties.Name)
}
