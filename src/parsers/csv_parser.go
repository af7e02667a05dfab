// backend/src/parsers/csv_parser.go
package parsers

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/username/vendadash/backend/src/logger"
	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/processors"
	"github.com/username/vendadash/backend/src/utils"
)

// SalesCSVParser ingests a loosely structured sales CSV export: it detects the
// file schema from the header line, normalizes each data row into a canonical
// Transaction, and resolves missing cost/profit through the economics resolver.
//
// Rows are split naively on the detected delimiter. Quoted cells containing
// the delimiter are not supported; the upstream exports never produce them and
// quote characters are stripped from every cell.
type SalesCSVParser struct {
	economics *processors.EconomicsResolver
}

func NewSalesCSVParser(economics *processors.EconomicsResolver) *SalesCSVParser {
	return &SalesCSVParser{economics: economics}
}

func (p *SalesCSVParser) Parse(file io.Reader) ([]models.Transaction, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV input: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 {
		// Header only, or blank file: the ingestion-failure signal is an
		// empty record set, never an error.
		logger.L.Warn("CSV input has fewer than 2 lines, nothing to ingest", "lineCount", len(lines))
		return nil, nil
	}

	schema := DetectSchema(lines[0])
	logger.L.Debug("Detected CSV schema", "delimiter", schema.Delimiter, "hasEconomicsColumns", schema.HasEconomicsColumns())

	var transactions []models.Transaction
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cells := strings.Split(line, schema.Delimiter)
		cellAt := func(idx int) string {
			if idx == absentColumn || idx >= len(cells) {
				return ""
			}
			return cleanCell(cells[idx])
		}

		pkg := cellAt(schema.Package)
		if pkg == "" {
			pkg = models.DefaultPackage
		}

		sale := utils.ParseMoney(cellAt(schema.SaleValue))
		cost, profit := p.economics.Resolve(
			pkg, sale,
			utils.ParseMoney(cellAt(schema.Cost)),
			utils.ParseMoney(cellAt(schema.Profit)),
			schema.HasEconomicsColumns(),
		)

		transactions = append(transactions, models.Transaction{
			ID:        recordID(i, line),
			Date:      utils.NormalizeDate(cellAt(schema.Date)),
			Operator:  orDefault(cellAt(schema.Operator), models.DefaultOperator),
			Client:    orDefault(cellAt(schema.Client), models.DefaultClient),
			Package:   pkg,
			Category:  orDefault(cellAt(schema.Category), models.DefaultCategory),
			SaleValue: sale,
			Cost:      cost,
			Profit:    profit,
			Status:    orDefault(cellAt(schema.Status), models.DefaultStatus),
		})
	}

	logger.L.Info("CSV ingestion complete", "rows", len(lines)-1, "transactions", len(transactions))
	return transactions, nil
}

// recordID derives a deterministic, collision-resistant identifier from the
// row's position in the batch and its raw text, so repeated ingestion of the
// same file yields the same identifiers.
func recordID(rowIndex int, rawLine string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", rowIndex, rawLine)))
	return hex.EncodeToString(hash[:])[:12]
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
