package utils

import (
	"strings"
	"time"
)

// CanonicalDayFormat is the canonical calendar-day layout used on Transaction.Date.
const CanonicalDayFormat = "2006-01-02"

// NormalizeDate converts a raw date cell to the canonical YYYY-MM-DD form.
// Accepted shapes: "YYYY-MM-DD", "DD/MM/YYYY", and either followed by a
// comma- or space-delimited time-of-day, which is discarded. An empty input
// defaults to the current processing date. Anything else passes through
// unchanged (best effort) and may carry an invalid calendar value.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().Format(CanonicalDayFormat)
	}

	clean := raw
	if i := strings.Index(raw, ","); i >= 0 {
		clean = strings.TrimSpace(raw[:i])
	} else if strings.Contains(raw, " ") && strings.Contains(raw, ":") {
		clean = strings.TrimSpace(raw[:strings.Index(raw, " ")])
	}

	if strings.Contains(clean, "/") {
		parts := strings.Split(clean, "/")
		if len(parts) == 3 {
			// DD/MM/YYYY reordered to YYYY-MM-DD.
			return parts[2] + "-" + padDayComponent(parts[1]) + "-" + padDayComponent(parts[0])
		}
	}

	if i := strings.Index(clean, "T"); i >= 0 {
		clean = clean[:i]
	}
	return clean
}

// ParseDay parses a canonical YYYY-MM-DD string into a calendar day.
func ParseDay(dateStr string) (time.Time, error) {
	return time.Parse(CanonicalDayFormat, dateStr)
}

func padDayComponent(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
