package calorie

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

const breakdownSeparator = " • "

// displayDigits caps the fraction digits shown for an amount.
const displayDigits = 3

// FormatCalories renders v with thousands separators and at most three
// rounded fraction digits, e.g. 1500 -> "1,500", 0.19999999999999998 -> "0.2".
func FormatCalories(v float64) string {
	scale := math.Pow10(displayDigits)
	r := math.Round(v*scale) / scale
	if r == 0 {
		// drop the sign of negative zero
		r = 0
	}
	return humanize.CommafWithDigits(r, displayDigits)
}

// Breakdown describes where the burned calories came from. Zero parts are
// left out.
func (r Result) Breakdown() string {
	var parts []string
	if r.ExerciseCalories > 0 {
		parts = append(parts, "Exercise: "+FormatCalories(r.ExerciseCalories))
	}
	if r.StepsCalories > 0 {
		parts = append(parts, "Steps: "+FormatCalories(r.StepsCalories))
	}
	if len(parts) == 0 {
		return "No exercise or steps recorded"
	}
	return strings.Join(parts, breakdownSeparator)
}
