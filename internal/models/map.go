package models

// HeatmapPoint represents a single weighted point of the density layer
type HeatmapPoint struct {
	Lat    float64 `json:"lat"`    // Latitude
	Lng    float64 `json:"lng"`    // Longitude
	Weight float64 `json:"weight"` // Raw count value, unnormalized
}

// Marker represents one map marker with its popup and tooltip texts
type Marker struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Popup   string  `json:"popup"`
	Tooltip string  `json:"tooltip,omitempty"`
	Label   string  `json:"label,omitempty"` // Text label drawn next to pump markers
}

// HeatLayer carries the density layer points and render settings
type HeatLayer struct {
	Points     []HeatmapPoint    `json:"points"`
	Radius     int               `json:"radius"`
	Blur       int               `json:"blur"`
	MinOpacity float64           `json:"min_opacity"`
	MaxOpacity float64           `json:"max_opacity"`
	Gradient   map[string]string `json:"gradient"`
}

// MapDocument is the composed map artifact rendered by the page.
// Layers stack in the fixed order heat, deaths, pumps; later layers
// draw on top.
type MapDocument struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      int     `json:"zoom"`

	Heat         *HeatLayer `json:"heat,omitempty"`
	DeathMarkers []Marker   `json:"death_markers,omitempty"`
	PumpMarkers  []Marker   `json:"pump_markers"`

	Options MapOptions `json:"options"`
}
