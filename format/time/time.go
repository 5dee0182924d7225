// Package time translates ISO 2022-07-15 date formats into Go time layouts
// and provides tolerant layout-driven parsing for the date-time conversion
// categories.
package time

import (
	"strings"
	"time"
)

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format to RFC3339 time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// LayoutOf maps a conversion-context format to a Go time layout: ISO
// 2022-07-15 style formats are translated, anything else is assumed to
// already be a layout.
func LayoutOf(format string) string {
	if strings.ContainsRune(format, 'Y') || strings.Contains(format, "DD") || strings.Contains(format, "hh") {
		return DateFormatToTimeLayout(format)
	}
	return format
}

// Parse parses value with layout in UTC, RFC3339 when the layout is empty.
func Parse(layout, value string) (time.Time, error) {
	return ParseInLocation(layout, value, time.UTC)
}

// ParseInLocation parses value with layout, interpreting offset-less input in
// loc. Mismatched "T" separators and value/layout length differences are
// tolerated the way lenient serialization input requires.
func ParseInLocation(layout, value string, loc *time.Location) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		if len(value) > len(layout) {
			value = value[:len(layout)]
			t, err = time.ParseInLocation(layout, value, loc)
		} else {
			layout = layout[:len(value)]
			t, err = time.ParseInLocation(layout, value, loc)
		}
	}
	return t, err
}
