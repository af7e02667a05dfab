package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ParseMoney parses a monetary cell: quotes and surrounding whitespace are
// stripped, a single decimal comma is replaced with a decimal point, and the
// result is parsed as a float. Unparsable or empty input yields zero.
//
// There is no thousands-separator handling: "1.234,56" becomes "1.234.56" and
// is read up to its longest valid numeric prefix, 1.234. Known precision
// limitation inherited from the upstream export convention.
func ParseMoney(raw string) float64 {
	clean := strings.TrimSpace(strings.ReplaceAll(raw, "\"", ""))
	if clean == "" {
		return 0
	}
	clean = strings.Replace(clean, ",", ".", 1)
	if v, err := strconv.ParseFloat(clean, 64); err == nil {
		return v
	}
	return numericPrefix(clean)
}

// numericPrefix reads the longest leading substring that still parses as a
// number, mirroring lenient float parsing in spreadsheet-adjacent tooling.
func numericPrefix(s string) float64 {
	end := 0
	seenDot := false
	for i, r := range s {
		if r == '+' || r == '-' {
			if i != 0 {
				break
			}
		} else if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
