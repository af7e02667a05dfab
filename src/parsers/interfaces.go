package parsers

import (
	"io"

	"github.com/username/vendadash/backend/src/models"
)

// Parser turns a raw CSV export into the canonical record set. An empty
// result with a nil error is the ingestion-failure signal (fewer than two
// lines, or no usable data rows); callers decide how to surface it.
type Parser interface {
	Parse(file io.Reader) ([]models.Transaction, error)
}
