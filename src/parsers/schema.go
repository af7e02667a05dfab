// backend/src/parsers/schema.go
package parsers

import (
	"strings"

	"github.com/username/vendadash/backend/src/security/validation"
)

// absentColumn marks a canonical field with no matching header.
const absentColumn = -1

// Accepted header aliases per canonical field, in ranked order. Matching is
// case-insensitive, exact-or-substring, and the first header that satisfies
// any alias wins. Column order in the source file is irrelevant.
var (
	dateAliases     = []string{"Data"}
	operatorAliases = []string{"Operadora"}
	clientAliases   = []string{"Cliente"}
	packageAliases  = []string{"Pacote"}
	categoryAliases = []string{"Categoria"}
	saleAliases     = []string{"Valor Venda", "Venda"}
	costAliases     = []string{"Custo"}
	profitAliases   = []string{"Lucro"}
	statusAliases   = []string{"Status"}
)

// Schema is the result of inspecting a CSV header line: the field delimiter
// and the positional index of each canonical field (absentColumn when the
// file carries no matching header).
type Schema struct {
	Delimiter string

	Date      int
	Operator  int
	Client    int
	Package   int
	Category  int
	SaleValue int
	Cost      int
	Profit    int
	Status    int
}

// HasEconomicsColumns reports whether the file schema carries a cost or
// profit column at all. When neither exists, profit must be inferred from
// package-name heuristics instead of algebraic reconciliation.
func (s Schema) HasEconomicsColumns() bool {
	return s.Cost != absentColumn || s.Profit != absentColumn
}

// DetectSchema inspects the header line of a CSV export. The delimiter is a
// single global decision: semicolon if the header contains one, comma
// otherwise. A leading byte-order mark is stripped before inspection.
func DetectSchema(headerLine string) Schema {
	headerLine = strings.TrimPrefix(headerLine, "\ufeff")

	delimiter := ","
	if strings.Contains(headerLine, ";") {
		delimiter = ";"
	}

	rawHeaders := strings.Split(headerLine, delimiter)
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = cleanCell(h)
	}

	return Schema{
		Delimiter: delimiter,
		Date:      findColumn(headers, dateAliases),
		Operator:  findColumn(headers, operatorAliases),
		Client:    findColumn(headers, clientAliases),
		Package:   findColumn(headers, packageAliases),
		Category:  findColumn(headers, categoryAliases),
		SaleValue: findColumn(headers, saleAliases),
		Cost:      findColumn(headers, costAliases),
		Profit:    findColumn(headers, profitAliases),
		Status:    findColumn(headers, statusAliases),
	}
}

// findColumn returns the index of the first header matching any alias.
func findColumn(headers []string, aliases []string) int {
	for i, header := range headers {
		lower := strings.ToLower(header)
		for _, alias := range aliases {
			aliasLower := strings.ToLower(alias)
			if lower == aliasLower || strings.Contains(lower, aliasLower) {
				return i
			}
		}
	}
	return absentColumn
}

// cleanCell trims a cell, strips quote characters and drops unprintable runes.
func cleanCell(v string) string {
	return validation.StripUnprintable(strings.ReplaceAll(strings.TrimSpace(v), "\"", ""))
}
