package service

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/broadstreet/cholera-dashboard-go/internal/geodata"
	"github.com/broadstreet/cholera-dashboard-go/internal/models"
	"github.com/broadstreet/cholera-dashboard-go/internal/repository"
)

// DatasetService owns the loaded layers. The load operation runs once per
// process lifetime and its outcome, success or failure, is cached: both
// layers load together or not at all.
type DatasetService struct {
	dataPath string
	repo     *repository.LayerRepository // nil disables the warm cache

	once    sync.Once
	dataset *models.Dataset
	loadErr error
}

// NewDatasetService creates a new dataset service
func NewDatasetService(dataPath string, repo *repository.LayerRepository) *DatasetService {
	return &DatasetService{
		dataPath: dataPath,
		repo:     repo,
	}
}

// Dataset returns the loaded layers, reading through the cache hierarchy:
// memory, then the sqlite warm cache, then the dataset directory.
func (s *DatasetService) Dataset() (*models.Dataset, error) {
	s.once.Do(func() {
		s.dataset, s.loadErr = s.load()
		if s.loadErr != nil {
			logrus.WithError(s.loadErr).Error("dataset load failed")
		}
	})
	return s.dataset, s.loadErr
}

// load resolves one dataset from cache or disk
func (s *DatasetService) load() (*models.Dataset, error) {
	signature, err := geodata.Signature(s.dataPath)
	if err != nil {
		return nil, err
	}

	if s.repo != nil {
		cached, err := s.repo.Get(signature)
		if err != nil {
			// A broken cache never fails the load; fall through to disk
			logrus.WithError(err).Warn("layer cache read failed")
		} else if cached != nil {
			logrus.WithFields(logrus.Fields{
				"deaths": len(cached.Deaths),
				"pumps":  len(cached.Pumps),
			}).Info("dataset served from warm cache")
			return cached, nil
		}
	}

	ds, err := geodata.Load(s.dataPath)
	if err != nil {
		return nil, err
	}

	if s.repo != nil {
		if err := s.repo.Put(signature, ds); err != nil {
			logrus.WithError(err).Warn("layer cache write failed")
		}
	}

	logrus.WithFields(logrus.Fields{
		"deaths": len(ds.Deaths),
		"pumps":  len(ds.Pumps),
	}).Info("dataset loaded")
	return ds, nil
}
