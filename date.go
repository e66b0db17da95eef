package boletin

import (
	"fmt"
	"strings"
	"unicode"
)

// Date is a calendar date as published by the gazette. Components are
// kept as integers and zero-padded on formatting.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a date string. It accepts YYYY-MM-DD, YYYY/MM/DD or
// YYYYMMDD: all non-digit characters are stripped and exactly eight
// digits must remain, otherwise an EINVALID error is returned.
func ParseDate(input string) (Date, error) {
	var b strings.Builder
	for _, r := range input {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 8 {
		return Date{}, Errorf(EINVALID, "date %q must contain year, month and day (YYYYMMDD)", input)
	}

	var d Date
	if _, err := fmt.Sscanf(digits, "%4d%2d%2d", &d.Year, &d.Month, &d.Day); err != nil {
		return Date{}, Errorf(EINVALID, "date %q must contain year, month and day (YYYYMMDD)", input)
	}
	return d, nil
}

// Compact returns the date as YYYYMMDD.
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// ISO returns the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String returns the date in the gazette's URL form, YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}
