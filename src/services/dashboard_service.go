// backend/src/services/dashboard_service.go
package services

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/vendadash/backend/src/logger"
	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/parsers"
	"github.com/username/vendadash/backend/src/processors"
)

const (
	// Session-resident record sets, keyed by dataset handle.
	ckDataset = "dataset_%s"
	// Memoized statistics per (dataset, criteria) combination.
	ckStats = "stats_%s_%s"

	statsCacheExpiration = 15 * time.Minute
)

type dashboardServiceImpl struct {
	parser         parsers.Parser
	filterEngine   *processors.FilterEngine
	statsProcessor *processors.StatsProcessor
	store          *cache.Cache
}

func NewDashboardService(
	parser parsers.Parser,
	filterEngine *processors.FilterEngine,
	statsProcessor *processors.StatsProcessor,
	store *cache.Cache,
) DashboardService {
	return &dashboardServiceImpl{
		parser:         parser,
		filterEngine:   filterEngine,
		statsProcessor: statsProcessor,
		store:          store,
	}
}

func (s *dashboardServiceImpl) ProcessUpload(fileReader io.Reader) (*UploadResult, error) {
	startTime := time.Now()
	logger.L.Info("ProcessUpload START")

	transactions, err := s.parser.Parse(fileReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	if len(transactions) == 0 {
		return nil, ErrEmptyFile
	}

	datasetID := uuid.NewString()
	s.store.Set(fmt.Sprintf(ckDataset, datasetID), transactions, cache.DefaultExpiration)

	result := &UploadResult{
		DatasetID:    datasetID,
		Transactions: transactions,
		Operators:    operatorOptions(transactions),
		Stats:        s.statsProcessor.Process(transactions),
	}
	logger.L.Info("ProcessUpload END", "datasetID", datasetID, "transactionCount", len(transactions), "duration", time.Since(startTime))
	return result, nil
}

func (s *dashboardServiceImpl) GetTransactions(datasetID string, criteria models.FilterCriteria) ([]models.Transaction, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return s.filterEngine.Apply(transactions, criteria), nil
}

func (s *dashboardServiceImpl) GetDashboardStats(datasetID string, criteria models.FilterCriteria) (*models.DashboardStats, error) {
	cacheKey := fmt.Sprintf(ckStats, datasetID, criteria.CacheKey())
	if cached, found := s.store.Get(cacheKey); found {
		logger.L.Debug("Cache hit for dashboard stats", "datasetID", datasetID, "criteria", criteria.CacheKey())
		return cached.(*models.DashboardStats), nil
	}

	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}

	stats := s.statsProcessor.Process(s.filterEngine.Apply(transactions, criteria))
	s.store.Set(cacheKey, stats, statsCacheExpiration)
	logger.L.Debug("Computed dashboard stats", "datasetID", datasetID, "criteria", criteria.CacheKey(), "salesCount", stats.SalesCount)
	return stats, nil
}

func (s *dashboardServiceImpl) GetOperators(datasetID string) ([]string, error) {
	transactions, err := s.dataset(datasetID)
	if err != nil {
		return nil, err
	}
	return operatorOptions(transactions), nil
}

func (s *dashboardServiceImpl) dataset(datasetID string) ([]models.Transaction, error) {
	cached, found := s.store.Get(fmt.Sprintf(ckDataset, datasetID))
	if !found {
		logger.L.Warn("Dataset lookup miss", "datasetID", datasetID)
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, datasetID)
	}
	return cached.([]models.Transaction), nil
}

// operatorOptions lists the distinct operators in a record set, sorted, with
// the select-all sentinel first. Feeds the dashboard's operator filter.
func operatorOptions(transactions []models.Transaction) []string {
	seen := make(map[string]bool)
	var operators []string
	for _, tx := range transactions {
		if !seen[tx.Operator] {
			seen[tx.Operator] = true
			operators = append(operators, tx.Operator)
		}
	}
	sort.Strings(operators)
	return append([]string{models.AllOperators}, operators...)
}
