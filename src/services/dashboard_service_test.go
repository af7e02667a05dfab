package services

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/vendadash/backend/src/logger"
	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/parsers"
	"github.com/username/vendadash/backend/src/processors"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func newTestService() DashboardService {
	return NewDashboardService(
		parsers.NewSalesCSVParser(processors.NewEconomicsResolver()),
		processors.NewFilterEngine(),
		processors.NewStatsProcessor(),
		cache.New(time.Hour, time.Hour),
	)
}

const testCSV = "Data;Operadora;Cliente;Pacote;Valor Venda;Custo;Lucro;Status\n" +
	"15/01/2024;Vodacom;Ana;5GB;100;80;20;Pago\n" +
	"16/01/2024;Movitel;Bruno;Crédito 500;500;410;90;Pendente\n" +
	"01/02/2024;Vodacom;Ana;1024MB;50;44;6;Pago\n"

func TestProcessUpload(t *testing.T) {
	service := newTestService()

	result, err := service.ProcessUpload(strings.NewReader(testCSV))
	require.NoError(t, err)

	assert.NotEmpty(t, result.DatasetID)
	assert.Len(t, result.Transactions, 3)
	assert.Equal(t, []string{models.AllOperators, "Movitel", "Vodacom"}, result.Operators)
	require.NotNil(t, result.Stats)
	assert.Equal(t, 3, result.Stats.SalesCount)
	assert.InDelta(t, 650, result.Stats.TotalRevenue, 1e-9)
}

func TestProcessUploadEmptyFile(t *testing.T) {
	service := newTestService()

	_, err := service.ProcessUpload(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = service.ProcessUpload(strings.NewReader("Data;Venda\n"))
	assert.ErrorIs(t, err, ErrEmptyFile, "header-only upload is an ingestion failure")
}

func TestGetDashboardStatsWithCriteria(t *testing.T) {
	service := newTestService()
	result, err := service.ProcessUpload(strings.NewReader(testCSV))
	require.NoError(t, err)

	criteria := models.FilterCriteria{
		Operator:  "Vodacom",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}
	stats, err := service.GetDashboardStats(result.DatasetID, criteria)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SalesCount)
	assert.InDelta(t, 100, stats.TotalRevenue, 1e-9)
}

func TestGetDashboardStatsMemoized(t *testing.T) {
	service := newTestService()
	result, err := service.ProcessUpload(strings.NewReader(testCSV))
	require.NoError(t, err)

	criteria := models.FilterCriteria{Operator: models.AllOperators}
	first, err := service.GetDashboardStats(result.DatasetID, criteria)
	require.NoError(t, err)
	second, err := service.GetDashboardStats(result.DatasetID, criteria)
	require.NoError(t, err)

	assert.Same(t, first, second, "second lookup is served from the memo cache")
}

func TestGetTransactionsFiltered(t *testing.T) {
	service := newTestService()
	result, err := service.ProcessUpload(strings.NewReader(testCSV))
	require.NoError(t, err)

	transactions, err := service.GetTransactions(result.DatasetID, models.FilterCriteria{Operator: "Movitel"})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Bruno", transactions[0].Client)
}

func TestUnknownDataset(t *testing.T) {
	service := newTestService()

	_, err := service.GetDashboardStats("nope", models.FilterCriteria{})
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	_, err = service.GetTransactions("nope", models.FilterCriteria{})
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	_, err = service.GetOperators("nope")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestDatasetExpiry(t *testing.T) {
	store := cache.New(10*time.Millisecond, time.Minute)
	service := NewDashboardService(
		parsers.NewSalesCSVParser(processors.NewEconomicsResolver()),
		processors.NewFilterEngine(),
		processors.NewStatsProcessor(),
		store,
	)

	result, err := service.ProcessUpload(strings.NewReader(testCSV))
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, err = service.GetOperators(result.DatasetID)
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}
