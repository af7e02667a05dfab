package services

import (
	"errors"
	"io"

	"github.com/username/vendadash/backend/src/models"
)

var (
	// ErrParsingFailed wraps low-level CSV read errors.
	ErrParsingFailed = errors.New("parsing failed")
	// ErrEmptyFile signals an upload with no usable data rows.
	ErrEmptyFile = errors.New("file empty or malformed")
	// ErrDatasetNotFound signals an unknown or expired dataset handle.
	ErrDatasetNotFound = errors.New("dataset not found")
)

// UploadResult is the response payload of a successful ingestion.
type UploadResult struct {
	DatasetID    string                 `json:"datasetId"`
	Transactions []models.Transaction   `json:"transactions"`
	Operators    []string               `json:"operators"`
	Stats        *models.DashboardStats `json:"stats"`
}

// DashboardService is the core pipeline boundary: ingest an upload into a
// session-resident dataset, then serve filtered record sets and aggregate
// statistics for it.
type DashboardService interface {
	ProcessUpload(fileReader io.Reader) (*UploadResult, error)
	GetTransactions(datasetID string, criteria models.FilterCriteria) ([]models.Transaction, error)
	GetDashboardStats(datasetID string, criteria models.FilterCriteria) (*models.DashboardStats, error)
	GetOperators(datasetID string) ([]string, error)
}
