// backend/src/processors/filter_processor.go
package processors

import (
	"github.com/username/vendadash/backend/src/models"
	"github.com/username/vendadash/backend/src/utils"
)

// FilterEngine narrows a record set by operator and date interval. It is a
// pure function of its inputs: the caller's slice is never touched and an
// empty result is a valid outcome, not an error.
type FilterEngine struct{}

func NewFilterEngine() *FilterEngine { return &FilterEngine{} }

// Apply returns the subset of transactions matching the criteria. An empty
// operator is treated like the AllOperators sentinel; otherwise the match is
// exact and case-sensitive. Date bounds are inclusive and compared at
// calendar-day granularity.
func (f *FilterEngine) Apply(transactions []models.Transaction, criteria models.FilterCriteria) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if op := criteria.Operator; op != "" && op != models.AllOperators && tx.Operator != op {
			continue
		}
		if !withinInterval(tx.Date, criteria.StartDate, criteria.EndDate) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// withinInterval checks an inclusive [start, end] calendar-day interval.
// A record whose date does not parse as a calendar day fails any bounded
// criterion; with no bounds it always passes. Unparsable bounds are ignored.
func withinInterval(date, start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	day, err := utils.ParseDay(date)
	if err != nil {
		return false
	}
	if start != "" {
		if startDay, err := utils.ParseDay(start); err == nil && day.Before(startDay) {
			return false
		}
	}
	if end != "" {
		if endDay, err := utils.ParseDay(end); err == nil && day.After(endDay) {
			return false
		}
	}
	return true
}
