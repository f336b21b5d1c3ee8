// Package dates computes calendar differences for date inputs collected by
// forms. Inputs are loosely typed: ISO-style strings are parsed, time values
// are used as-is, and anything that does not resolve to a real instant is
// treated as an invalid date rather than an error.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MillisPerDay is the length of a day used by Days.
const MillisPerDay int64 = 24 * 60 * 60 * 1000

// MaxYear bounds expanded years to the range the browser Date accepts.
const MaxYear = 271821

var (
	expandedYear = regexp.MustCompile(`^([+-])(\d{6})((?:-.*)?)$`)
	endOfDay     = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[T ])24(:00(?::00(?:\.0+)?)?)(Z|[+-].*)?$`)
)

// date-only forms resolve to UTC midnight
var utcLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// forms carrying an explicit offset or Z designator
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// date-time forms without an offset resolve in the local zone
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Days returns the number of whole days between endDate and startDate. Each
// argument may be a string, a time.Time or a *time.Time. The result is the
// absolute millisecond difference divided by MillisPerDay and truncated, so it
// is never negative and the argument order does not matter. When either value
// is not a valid date the result is 0.
func Days(endDate, startDate any) int {
	start, ok := Parse(startDate)
	if !ok {
		return 0
	}
	end, ok := Parse(endDate)
	if !ok {
		return 0
	}

	diff := end.UnixMilli() - start.UnixMilli()
	if diff < 0 {
		diff = -diff
	}
	return int(diff / MillisPerDay)
}

// Parse resolves a date-like value into a time.Time. It reports false for
// unparseable strings, nil pointers, zero times and unsupported types.
//
// A zero time.Time means "unset" and is rejected, while the string
// "0001-01-01" parses to that same instant and is accepted.
func Parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		return parseString(v)
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	default:
		return time.Time{}, false
	}
}

// parseString accepts the layouts above plus expanded years (+YYYYYY or
// -YYYYYY) and 24:00 as the end of a day.
func parseString(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	year, rest, expanded, ok := splitExpandedYear(trimmed)
	if !ok {
		return time.Time{}, false
	}
	if expanded {
		trimmed = proxyYear(year) + rest
	}

	rollover := false
	if endOfDay.MatchString(trimmed) {
		trimmed = endOfDay.ReplaceAllString(trimmed, "${1}00${2}${3}")
		rollover = true
	}

	t, ok := parseLayouts(trimmed)
	if !ok {
		return time.Time{}, false
	}
	if expanded {
		t = time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	if rollover {
		t = t.AddDate(0, 0, 1)
	}
	return t, true
}

func parseLayouts(value string) (time.Time, bool) {
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// splitExpandedYear extracts a six-digit signed year. ok is false for
// "-000000" and years beyond MaxYear.
func splitExpandedYear(value string) (year int, rest string, expanded, ok bool) {
	m := expandedYear.FindStringSubmatch(value)
	if m == nil {
		return 0, value, false, true
	}
	year, err := strconv.Atoi(m[2])
	if err != nil || year > MaxYear {
		return 0, "", true, false
	}
	if m[1] == "-" {
		if year == 0 {
			return 0, "", true, false
		}
		year = -year
	}
	return year, m[3], true, true
}

// proxyYear stands in for year with a four-digit year of the same leap-ness
// so the layouts can validate month and day.
func proxyYear(year int) string {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return "2000"
	}
	return "2001"
}
