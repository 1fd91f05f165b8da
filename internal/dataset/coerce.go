package dataset

import (
	"strconv"
	"strings"
	"time"
)

// timeLayouts lists the accepted timestamp spellings, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// coerceTime converts a cell to a naive timestamp. Timezone-aware inputs are
// converted to UTC before the offset is dropped; unparseable values report
// false and become nulls upstream.
func coerceTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x.UTC(), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

// coerceNumber converts a cell to float64. Unconvertible values report false
// and become nulls upstream, never errors.
func coerceNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		return parseNumeric(x)
	}
	return 0, false
}

// parseNumeric tolerates percent suffixes, space-style thousands separators
// (including no-break spaces) and a comma decimal separator.
func parseNumeric(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, "\u00a0", "")
	raw = strings.ReplaceAll(raw, "\u202f", "")
	raw = strings.ReplaceAll(raw, " ", "")
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// asInt extracts an integer from a cell, accepting integral floats and
// numeric strings. Used for the year and hour facets, whose columns may be
// user-supplied in any of those shapes.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	case string:
		if f, ok := parseNumeric(x); ok && f == float64(int(f)) {
			return int(f), true
		}
	}
	return 0, false
}

// AsInt is asInt for callers outside the loader (facet matching).
func AsInt(v any) (int, bool) { return asInt(v) }
