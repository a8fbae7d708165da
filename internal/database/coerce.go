package database

import (
	"fmt"
	"strconv"
)

// Decimal columns are stored as fixed-precision text-backed numerics so
// no binary rounding is introduced at the storage boundary. These are
// the scales of the persisted columns.
const (
	priceScale = 2
	coordScale = 8
	areaScale  = 2
)

// formatDecimal serializes v for a numeric column with the given scale.
func formatDecimal(v float64, scale int) string {
	return strconv.FormatFloat(v, 'f', scale, 64)
}

// parseDecimal reads a stored numeric value back. A malformed stored
// value is a data-integrity failure, not something to retry.
func parseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed decimal %q in storage: %w", s, err)
	}
	return v, nil
}
