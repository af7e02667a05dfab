package parsers

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/vendadash/backend/src/logger"
	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/processors"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func newTestParser() *SalesCSVParser {
	return NewSalesCSVParser(processors.NewEconomicsResolver())
}

func TestParseSemicolonFile(t *testing.T) {
	csv := "Data;Operadora;Cliente;Pacote;Categoria;Valor Venda;Custo;Lucro;Status\n" +
		"15/01/2024;Vodacom;Ana;Crédito 100;Recargas;100;70;30;Pago\n" +
		"2024-01-16;Movitel;Bruno;5GB;Dados;200;;50;Pendente\n"

	transactions, err := newTestParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, "Vodacom", first.Operator)
	assert.Equal(t, "Ana", first.Client)
	assert.Equal(t, "Crédito 100", first.Package)
	assert.Equal(t, "Recargas", first.Category)
	assert.InDelta(t, 100, first.SaleValue, 1e-9)
	assert.InDelta(t, 70, first.Cost, 1e-9)
	assert.InDelta(t, 30, first.Profit, 1e-9)
	assert.Equal(t, "Pago", first.Status)

	// Blank cost with profit present: cost = sale - profit.
	second := transactions[1]
	assert.Equal(t, "2024-01-16", second.Date)
	assert.InDelta(t, 150, second.Cost, 1e-9)
	assert.InDelta(t, 50, second.Profit, 1e-9)
}

func TestParseAppliesDefaultsForMissingColumns(t *testing.T) {
	csv := "Data,Valor Venda\n2024-02-01,100\n"

	transactions, err := newTestParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	tx := transactions[0]
	assert.Equal(t, models.DefaultOperator, tx.Operator)
	assert.Equal(t, models.DefaultClient, tx.Client)
	assert.Equal(t, models.DefaultPackage, tx.Package)
	assert.Equal(t, models.DefaultCategory, tx.Category)
	assert.Equal(t, models.DefaultStatus, tx.Status)
	// No cost/profit columns anywhere: the 15% fallback margin applies.
	assert.InDelta(t, 15, tx.Profit, 1e-9)
	assert.InDelta(t, 85, tx.Cost, 1e-9)
}

func TestParseColumnOrderIrrelevant(t *testing.T) {
	csv := "Status,Valor Venda,Cliente,Data\nPago,250,Carla,2024-03-01\n"

	transactions, err := newTestParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Pago", transactions[0].Status)
	assert.Equal(t, "Carla", transactions[0].Client)
	assert.Equal(t, "2024-03-01", transactions[0].Date)
	assert.InDelta(t, 250, transactions[0].SaleValue, 1e-9)
}

func TestParseSkipsBlankLines(t *testing.T) {
	csv := "Data,Venda\n\n2024-01-01,10\n   \n2024-01-02,20\n"

	transactions, err := newTestParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestParseEmptyInputYieldsEmptyRecordSet(t *testing.T) {
	parser := newTestParser()

	transactions, err := parser.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, transactions)

	transactions, err = parser.Parse(strings.NewReader("Data,Venda\n"))
	require.NoError(t, err)
	assert.Empty(t, transactions, "header-only input is the ingestion-failure signal")
}

func TestParseIDsAreDeterministic(t *testing.T) {
	csv := "Data,Venda\n2024-01-01,10\n2024-01-01,10\n"
	parser := newTestParser()

	first, err := parser.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	second, err := parser.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, first[0].ID, second[0].ID, "same file, same identifiers")
	assert.NotEqual(t, first[0].ID, first[1].ID, "identical rows still get distinct identifiers")
}

func TestParseCRLFInput(t *testing.T) {
	csv := "Data;Venda\r\n2024-01-01;10\r\n"

	transactions, err := newTestParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "2024-01-01", transactions[0].Date)
	assert.InDelta(t, 10, transactions[0].SaleValue, 1e-9)
}
