package service

import (
	"sort"

	"github.com/broadstreet/cholera-dashboard-go/internal/models"
	"github.com/broadstreet/cholera-dashboard-go/internal/spatial"
	"github.com/broadstreet/cholera-dashboard-go/internal/stats"
)

// StatsService computes the statistics panel numbers
type StatsService struct {
	datasets *DatasetService
}

// NewStatsService creates a new stats service
func NewStatsService(datasets *DatasetService) *StatsService {
	return &StatsService{datasets: datasets}
}

// GetOutbreakStatistics derives counts and nearest-pump distances from the
// loaded layers. Purely derived, no state.
func (s *StatsService) GetOutbreakStatistics() (*models.OutbreakStatistics, error) {
	ds, err := s.datasets.Dataset()
	if err != nil {
		return nil, err
	}

	result := &models.OutbreakStatistics{
		DeathRecords: len(ds.Deaths),
		PumpRecords:  len(ds.Pumps),
		TotalDeaths:  ds.TotalDeaths(),
	}

	if len(ds.Deaths) == 0 || len(ds.Pumps) == 0 {
		return result, nil
	}

	pumpPoints := make([]spatial.Point, 0, len(ds.Pumps))
	for _, rec := range ds.Pumps {
		pumpPoints = append(pumpPoints, spatial.Point{Lat: rec.Lat, Lon: rec.Lng})
	}
	index := spatial.NewPumpIndex(pumpPoints)

	distances := make([]float64, 0, len(ds.Deaths))
	byPump := make(map[int]*models.PumpAttribution)

	for _, rec := range ds.Deaths {
		pump, meters, ok := index.Nearest(rec.Lat, rec.Lng)
		if !ok {
			continue
		}
		distances = append(distances, meters)

		attr, exists := byPump[pump]
		if !exists {
			attr = &models.PumpAttribution{PumpIndex: pump}
			byPump[pump] = attr
		}
		attr.DeathPoints++
		attr.Deaths += rec.Count
	}

	result.MeanNearestPumpMeters = stats.Mean(distances)
	result.MedianNearestPumpMeters = stats.Median(distances)
	result.MaxNearestPumpMeters = stats.Max(distances)

	for _, attr := range byPump {
		result.PumpAttributions = append(result.PumpAttributions, *attr)
	}
	sort.Slice(result.PumpAttributions, func(i, j int) bool {
		return result.PumpAttributions[i].PumpIndex < result.PumpAttributions[j].PumpIndex
	})

	return result, nil
}
