package models

// Default values substituted when a CSV cell is blank or its column is absent.
const (
	DefaultOperator = "Outros"
	DefaultClient   = "Desconhecido"
	DefaultPackage  = "Geral"
	DefaultCategory = "Geral"
	DefaultStatus   = "Pendente"
)

// AllOperators is the filter sentinel meaning "no operator restriction".
const AllOperators = "Todos"

// Transaction is the canonical, normalized representation of one ingested CSV row.
// Records are never mutated after ingestion; filtering and aggregation always
// produce new derived values.
type Transaction struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Operator  string  `json:"operator"`
	Client    string  `json:"client"`
	Package   string  `json:"package"`
	Category  string  `json:"category"`
	SaleValue float64 `json:"saleValue"`
	Cost      float64 `json:"cost"`
	Profit    float64 `json:"profit"`
	Status    string  `json:"status"` // e.g. "Pago", "Pendente", "Falha"
}

// TopEntry is one row of a count-and-rank grouping over a categorical field.
type TopEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TimePoint is one point of the revenue-over-time series.
type TimePoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Value  float64 `json:"value"`
	Profit float64 `json:"profit"`
}

// ClientRanking is one row of the top-clients ranking.
type ClientRanking struct {
	Name         string  `json:"name"`
	TotalSpent   float64 `json:"totalSpent"`
	Transactions int     `json:"transactions"`
}

// DashboardStats is a stateless snapshot of aggregate statistics over a record
// set. It is recomputed on every filter change and carries no identity beyond
// the record set plus criteria that produced it.
type DashboardStats struct {
	TotalRevenue       float64         `json:"totalRevenue"`
	TotalProfit        float64         `json:"totalProfit"`
	TotalCost          float64         `json:"totalCost"`
	SalesCount         int             `json:"salesCount"`
	AvgTicket          float64         `json:"avgTicket"`
	TopPackages        []TopEntry      `json:"topPackages"`
	TopOperators       []TopEntry      `json:"topOperators"`
	TopCategories      []TopEntry      `json:"topCategories"`
	StatusDistribution []TopEntry      `json:"statusDistribution"`
	RevenueOverTime    []TimePoint     `json:"revenueOverTime"`
	TopClients         []ClientRanking `json:"topClients"`
}

// FilterCriteria narrows a record set. Operator is either an exact operator
// name or the AllOperators sentinel; the date interval is inclusive on both
// ends and either bound may be empty to mean unbounded.
type FilterCriteria struct {
	Operator  string `json:"operator"`
	StartDate string `json:"startDate"` // YYYY-MM-DD, "" = unbounded
	EndDate   string `json:"endDate"`   // YYYY-MM-DD, "" = unbounded
}

// CacheKey returns a stable key identifying this criteria combination.
func (c FilterCriteria) CacheKey() string {
	return c.Operator + "|" + c.StartDate + "|" + c.EndDate
}
