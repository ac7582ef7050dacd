package models

// PumpAttribution counts the death records whose nearest pump is this pump
type PumpAttribution struct {
	PumpIndex   int `json:"pump_index"` // 1-based, matches the map labels
	DeathPoints int `json:"death_points"`
	Deaths      int `json:"deaths"` // Sum of count attributes
}

// OutbreakStatistics represents the statistics panel payload
type OutbreakStatistics struct {
	DeathRecords int `json:"death_records"`
	PumpRecords  int `json:"pump_records"`
	TotalDeaths  int `json:"total_deaths"` // Sum of count attributes

	// Distance from each death point to its nearest pump, meters.
	// Zero-valued when either layer is empty.
	MeanNearestPumpMeters   float64 `json:"mean_nearest_pump_meters"`
	MedianNearestPumpMeters float64 `json:"median_nearest_pump_meters"`
	MaxNearestPumpMeters    float64 `json:"max_nearest_pump_meters"`

	PumpAttributions []PumpAttribution `json:"pump_attributions,omitempty"`
}
