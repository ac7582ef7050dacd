package models

// DeathRecord represents one point of the cholera deaths layer
type DeathRecord struct {
	Lat      float64 `json:"lat" db:"lat"`
	Lng      float64 `json:"lng" db:"lng"`
	Count    int     `json:"count" db:"count"`         // Deaths at this location, defaults to 1
	HasCount bool    `json:"has_count" db:"has_count"` // Whether the source carried a Count attribute
}

// PumpRecord represents one point of the water pumps layer
type PumpRecord struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Dataset holds both loaded layers, normalized to EPSG:4326
type Dataset struct {
	Deaths []DeathRecord `json:"deaths"`
	Pumps  []PumpRecord  `json:"pumps"`
}

// TotalDeaths sums the count attribute over all death records
func (d *Dataset) TotalDeaths() int {
	total := 0
	for _, r := range d.Deaths {
		total += r.Count
	}
	return total
}
