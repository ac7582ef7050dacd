package models

// Slider bounds for the heatmap settings. The page enforces the same
// bounds client-side; Clamp keeps direct API calls inside them too.
const (
	MinHeatmapRadius     = 10
	MaxHeatmapRadius     = 30
	DefaultHeatmapRadius = 15

	MinHeatmapBlur     = 5
	MaxHeatmapBlur     = 20
	DefaultHeatmapBlur = 10

	MinHeatmapOpacity     = 0.1
	MaxHeatmapOpacity     = 1.0
	DefaultHeatmapOpacity = 0.6
)

// MapOptions holds the user-selected display toggles and heatmap settings
type MapOptions struct {
	ShowHeatmap      bool    `json:"show_heatmap"`
	ShowDeathMarkers bool    `json:"show_death_markers"`
	ShowPumpLabels   bool    `json:"show_pump_labels"`
	HeatmapRadius    int     `json:"heatmap_radius"`
	HeatmapBlur      int     `json:"heatmap_blur"`
	HeatmapOpacity   float64 `json:"heatmap_opacity"`
}

// DefaultMapOptions returns the options used when no query parameters are given
func DefaultMapOptions() MapOptions {
	return MapOptions{
		ShowHeatmap:      true,
		ShowDeathMarkers: true,
		ShowPumpLabels:   true,
		HeatmapRadius:    DefaultHeatmapRadius,
		HeatmapBlur:      DefaultHeatmapBlur,
		HeatmapOpacity:   DefaultHeatmapOpacity,
	}
}

// Clamp forces the numeric settings into their slider bounds
func (o *MapOptions) Clamp() {
	if o.HeatmapRadius < MinHeatmapRadius {
		o.HeatmapRadius = MinHeatmapRadius
	}
	if o.HeatmapRadius > MaxHeatmapRadius {
		o.HeatmapRadius = MaxHeatmapRadius
	}
	if o.HeatmapBlur < MinHeatmapBlur {
		o.HeatmapBlur = MinHeatmapBlur
	}
	if o.HeatmapBlur > MaxHeatmapBlur {
		o.HeatmapBlur = MaxHeatmapBlur
	}
	if o.HeatmapOpacity < MinHeatmapOpacity {
		o.HeatmapOpacity = MinHeatmapOpacity
	}
	if o.HeatmapOpacity > MaxHeatmapOpacity {
		o.HeatmapOpacity = MaxHeatmapOpacity
	}
}

// OptionRange describes one slider for the options endpoint
type OptionRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// OptionBounds describes defaults and valid ranges of all controls
type OptionBounds struct {
	ShowHeatmap      bool        `json:"show_heatmap"`
	ShowDeathMarkers bool        `json:"show_death_markers"`
	ShowPumpLabels   bool        `json:"show_pump_labels"`
	HeatmapRadius    OptionRange `json:"heatmap_radius"`
	HeatmapBlur      OptionRange `json:"heatmap_blur"`
	HeatmapOpacity   OptionRange `json:"heatmap_opacity"`
}

// DefaultOptionBounds returns the control metadata served to the page
func DefaultOptionBounds() OptionBounds {
	return OptionBounds{
		ShowHeatmap:      true,
		ShowDeathMarkers: true,
		ShowPumpLabels:   true,
		HeatmapRadius:    OptionRange{Min: MinHeatmapRadius, Max: MaxHeatmapRadius, Default: DefaultHeatmapRadius},
		HeatmapBlur:      OptionRange{Min: MinHeatmapBlur, Max: MaxHeatmapBlur, Default: DefaultHeatmapBlur},
		HeatmapOpacity:   OptionRange{Min: MinHeatmapOpacity, Max: MaxHeatmapOpacity, Default: DefaultHeatmapOpacity},
	}
}
