// backend/src/processors/stats_processor.go
package processors

import (
	"sort"

	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/utils"
)

// GroupField selects the categorical field a top-N grouping runs over.
// An explicit tagged selector keeps grouping free of reflection.
type GroupField int

const (
	GroupByPackage GroupField = iota
	GroupByOperator
	GroupByCategory
	GroupByStatus
)

func (f GroupField) valueOf(tx models.Transaction) string {
	switch f {
	case GroupByPackage:
		return tx.Package
	case GroupByOperator:
		return tx.Operator
	case GroupByCategory:
		return tx.Category
	case GroupByStatus:
		return tx.Status
	default:
		return ""
	}
}

const (
	topGroupLimit  = 10
	topClientLimit = 5
)

// StatsProcessor computes DashboardStats over a record set. Pure function of
// its input: invoking it twice on the same record set yields identical stats
// and the caller's slice is never reordered or mutated.
type StatsProcessor struct{}

func NewStatsProcessor() *StatsProcessor { return &StatsProcessor{} }

func (p *StatsProcessor) Process(transactions []models.Transaction) *models.DashboardStats {
	stats := &models.DashboardStats{
		SalesCount: len(transactions),
	}

	for _, tx := range transactions {
		stats.TotalRevenue += tx.SaleValue
		stats.TotalProfit += tx.Profit
		stats.TotalCost += tx.Cost
	}
	stats.TotalRevenue = utils.RoundFloat(stats.TotalRevenue, 2)
	stats.TotalProfit = utils.RoundFloat(stats.TotalProfit, 2)
	stats.TotalCost = utils.RoundFloat(stats.TotalCost, 2)
	if stats.SalesCount > 0 {
		stats.AvgTicket = utils.RoundFloat(stats.TotalRevenue/float64(stats.SalesCount), 2)
	}

	stats.TopPackages = topByField(transactions, GroupByPackage, topGroupLimit)
	stats.TopOperators = topByField(transactions, GroupByOperator, topGroupLimit)
	stats.TopCategories = topByField(transactions, GroupByCategory, topGroupLimit)
	stats.StatusDistribution = topByField(transactions, GroupByStatus, topGroupLimit)
	stats.RevenueOverTime = revenueOverTime(transactions)
	stats.TopClients = topClients(transactions, topClientLimit)

	return stats
}

// topByField counts occurrences per distinct field value and returns the
// limit most frequent, descending. Ties keep first-seen input order so the
// ranking is deterministic.
func topByField(transactions []models.Transaction, field GroupField, limit int) []models.TopEntry {
	counts := make(map[string]int)
	var order []string
	for _, tx := range transactions {
		value := field.valueOf(tx)
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	entries := make([]models.TopEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, models.TopEntry{Name: name, Value: counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// revenueOverTime sums revenue and profit per distinct date and emits one
// point per date in ascending chronological order. The output points are
// sorted directly; the input record set stays untouched.
func revenueOverTime(transactions []models.Transaction) []models.TimePoint {
	type daySums struct{ revenue, profit float64 }
	byDate := make(map[string]*daySums)
	var dates []string
	for _, tx := range transactions {
		sums, seen := byDate[tx.Date]
		if !seen {
			sums = &daySums{}
			byDate[tx.Date] = sums
			dates = append(dates, tx.Date)
		}
		sums.revenue += tx.SaleValue
		sums.profit += tx.Profit
	}

	// Canonical YYYY-MM-DD dates order chronologically as strings.
	sort.Strings(dates)

	points := make([]models.TimePoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, models.TimePoint{
			Date:   date,
			Value:  utils.RoundFloat(byDate[date].revenue, 2),
			Profit: utils.RoundFloat(byDate[date].profit, 2),
		})
	}
	return points
}

// topClients ranks clients by total spend, descending, with per-client
// transaction counts. Ties keep first-seen input order.
func topClients(transactions []models.Transaction, limit int) []models.ClientRanking {
	type clientSums struct {
		spent float64
		count int
	}
	byClient := make(map[string]*clientSums)
	var order []string
	for _, tx := range transactions {
		sums, seen := byClient[tx.Client]
		if !seen {
			sums = &clientSums{}
			byClient[tx.Client] = sums
			order = append(order, tx.Client)
		}
		sums.spent += tx.SaleValue
		sums.count++
	}

	rankings := make([]models.ClientRanking, 0, len(order))
	for _, name := range order {
		rankings = append(rankings, models.ClientRanking{
			Name:         name,
			TotalSpent:   utils.RoundFloat(byClient[name].spent, 2),
			Transactions: byClient[name].count,
		})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalSpent > rankings[j].TotalSpent
	})
	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}
