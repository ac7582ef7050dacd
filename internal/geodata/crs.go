package geodata

import (
	"fmt"
	"math"
	"strings"
)

// CRS identifies a coordinate reference system by EPSG code
type CRS struct {
	Code int
	Name string
}

var (
	// WGS84 is the target reference system of every loaded layer
	WGS84 = CRS{Code: 4326, Name: "WGS 84"}
	// WebMercator is the only supported projected source system
	WebMercator = CRS{Code: 3857, Name: "WGS 84 / Pseudo-Mercator"}
)

const webMercatorRadius = 6378137.0

// ParseCRSName resolves the name of a legacy GeoJSON crs member.
// Accepts "EPSG:4326", "urn:ogc:def:crs:EPSG::4326" and the CRS84 URN.
// An empty name means the GeoJSON default, WGS84.
func ParseCRSName(name string) (CRS, error) {
	if name == "" {
		return WGS84, nil
	}

	upper := strings.ToUpper(name)
	if strings.Contains(upper, "CRS84") {
		return WGS84, nil
	}

	// Take the code after the last ":" for both EPSG:n and urn forms
	idx := strings.LastIndex(upper, ":")
	if idx < 0 || idx == len(upper)-1 {
		return CRS{}, fmt.Errorf("unrecognized crs name %q", name)
	}

	var code int
	if _, err := fmt.Sscanf(upper[idx+1:], "%d", &code); err != nil {
		return CRS{}, fmt.Errorf("unrecognized crs name %q", name)
	}

	switch code {
	case WGS84.Code:
		return WGS84, nil
	case WebMercator.Code:
		return WebMercator, nil
	}
	return CRS{}, fmt.Errorf("unsupported crs %q, expected EPSG:4326 or EPSG:3857", name)
}

// ToWGS84 converts a coordinate pair (x=easting/longitude, y=northing/latitude)
// from the source system into latitude and longitude degrees.
// Conversion from WGS84 is the identity, so normalizing data that is
// already geographic leaves coordinates unchanged.
func (crs CRS) ToWGS84(x, y float64) (lat, lng float64) {
	switch crs.Code {
	case WebMercator.Code:
		lng = x / webMercatorRadius * 180 / math.Pi
		lat = (2*math.Atan(math.Exp(y/webMercatorRadius)) - math.Pi/2) * 180 / math.Pi
		return lat, lng
	default:
		return y, x
	}
}
