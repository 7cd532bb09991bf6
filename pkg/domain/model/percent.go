package model

import (
	"math"
	"strconv"
)

// FormatPercent renders a 0..100 value with one decimal and a "%" suffix.
// Ties round away from zero, so 0.25 becomes "0.3%".
func FormatPercent(v float64) string {
	rounded := math.Round(v*10) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64) + "%"
}
