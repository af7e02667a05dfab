// backend/src/processors/sort_processor.go
package processors

import (
	"sort"
	"strings"

	"github.com/username/vendadash/backend/src/models"
)

// SortField selects the field a tabular sort runs over.
type SortField string

const (
	SortByDate      SortField = "date"
	SortBySaleValue SortField = "saleValue"
	SortByProfit    SortField = "profit"
	SortByClient    SortField = "client"
	SortByCategory  SortField = "category"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortField maps a query-string value to a SortField, defaulting to date.
func ParseSortField(raw string) SortField {
	switch SortField(raw) {
	case SortBySaleValue, SortByProfit, SortByClient, SortByCategory:
		return SortField(raw)
	default:
		return SortByDate
	}
}

// SortTransactions returns a sorted copy of the record set; the caller's
// slice is never reordered. The sort is stable, so equal keys keep their
// relative input order.
func SortTransactions(transactions []models.Transaction, field SortField, direction SortDirection) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)

	less := lessFunc(sorted, field)
	if direction == SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(sorted, less)
	return sorted
}

func lessFunc(txs []models.Transaction, field SortField) func(i, j int) bool {
	switch field {
	case SortBySaleValue:
		return func(i, j int) bool { return txs[i].SaleValue < txs[j].SaleValue }
	case SortByProfit:
		return func(i, j int) bool { return txs[i].Profit < txs[j].Profit }
	case SortByClient:
		return func(i, j int) bool { return txs[i].Client < txs[j].Client }
	case SortByCategory:
		return func(i, j int) bool { return txs[i].Category < txs[j].Category }
	default:
		// Canonical YYYY-MM-DD dates order chronologically as strings.
		return func(i, j int) bool { return txs[i].Date < txs[j].Date }
	}
}

// SearchTransactions returns the records whose client, package, operator,
// category or status contains the query, case-insensitively. An empty query
// returns the input unchanged.
func SearchTransactions(transactions []models.Transaction, query string) []models.Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return transactions
	}

	matched := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if containsFold(tx.Client, query) ||
			containsFold(tx.Package, query) ||
			containsFold(tx.Operator, query) ||
			containsFold(tx.Category, query) ||
			containsFold(tx.Status, query) {
			matched = append(matched, tx)
		}
	}
	return matched
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
