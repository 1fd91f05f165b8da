// Package format renders numeric values the way the BoostMe dashboards
// display them: space as thousands separator, comma as decimal separator.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder is shown for values that cannot be rendered (NaN, Inf).
const Placeholder = "—"

// Int rounds v to the nearest integer (half away from zero) and renders it
// with a space as thousands separator, e.g. 12345 -> "12 345".
func Int(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return group(strconv.FormatInt(int64(math.Round(v)), 10))
}

// Decimal renders v with a fixed number of decimals, a comma as decimal
// separator and a space as thousands separator, e.g. 12345.6 -> "12 345,60".
func Decimal(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := group(intPart)
	if hasFrac {
		out += "," + fracPart
	}
	return out
}

// group inserts a space every three digits, leaving a leading sign alone.
func group(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
