// backend/src/processors/economics_processor.go
package processors

import (
	"strings"

	"github.com/username/vendadash/backend/src/utils"
)

// Flat profit margins encoded by package-name convention in exports that
// carry no cost/profit columns at all.
const (
	credit500Profit  = 90.0
	data1024MBProfit = 6.0
	data5GBProfit    = 20.0
	fallbackMargin   = 0.15 // share of sale value
)

// EconomicsResolver derives the missing side of the cost/profit pair for each
// row. Which strategy applies depends on the file schema, not the row: when
// the export carries no cost or profit column anywhere, profit comes from
// package-name heuristics; otherwise the pair is reconciled algebraically
// against the sale value.
type EconomicsResolver struct{}

func NewEconomicsResolver() *EconomicsResolver { return &EconomicsResolver{} }

// Resolve returns the cost and profit for one row, rounded to two decimal
// places. hasEconomicsColumns reports whether the schema carries a cost or
// profit column (even if blank on this particular row).
func (r *EconomicsResolver) Resolve(pkg string, sale, cost, profit float64, hasEconomicsColumns bool) (float64, float64) {
	if !hasEconomicsColumns {
		profit = heuristicProfit(pkg, sale)
		cost = sale - profit
		return utils.RoundFloat(cost, 2), utils.RoundFloat(profit, 2)
	}

	// Fill in whichever side is missing. Rows carrying both values are
	// trusted as supplied, even when they disagree with the sale value.
	if profit > 0 && cost == 0 {
		cost = sale - profit
	}
	if cost > 0 && profit == 0 {
		profit = sale - cost
	}
	return utils.RoundFloat(cost, 2), utils.RoundFloat(profit, 2)
}

// heuristicProfit maps a package name to its conventional margin. The
// substring rules are checked in fixed priority order.
func heuristicProfit(pkg string, sale float64) float64 {
	lower := strings.ToLower(pkg)
	switch {
	case strings.Contains(lower, "crédito 500"):
		return credit500Profit
	case strings.Contains(lower, "1024mb"):
		return data1024MBProfit
	case strings.Contains(lower, "5gb"):
		return data5GBProfit
	default:
		return sale * fallbackMargin
	}
}
