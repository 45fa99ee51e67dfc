// Package hub holds the small source-neutral values that the ORCID, BibTeX
// and CrossRef views hand to the crosswalk: partial dates and person names.
package hub

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Precision is the granularity of a partial date.
type Precision int

const (
	// PrecisionNone means no year is known.
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
)

// String returns the precision name.
func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	default:
		return "none"
	}
}

// Date is a publication date where month and day are independently optional.
// A zero field means unknown. A month is only kept when the year is known and
// a day only when the month is known.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate creates a Date, dropping components that are out of range or whose
// enclosing component is missing.
func NewDate(year, month, day int) Date {
	if year <= 0 {
		return Date{}
	}
	d := Date{Year: year}
	if month < 1 || month > 12 {
		return d
	}
	d.Month = month
	if day < 1 || day > 31 {
		return d
	}
	d.Day = day
	return d
}

// ParseDate creates a Date from string components as found in profile
// records (e.g. "2020", "05", "07"). Unparseable components are treated as
// absent.
func ParseDate(year, month, day string) Date {
	return NewDate(atoi(year), atoi(month), atoi(day))
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// IsZero reports whether no year is known.
func (d Date) IsZero() bool {
	return d.Year == 0
}

// Precision returns the granularity of the date.
func (d Date) Precision() Precision {
	switch {
	case d.Year == 0:
		return PrecisionNone
	case d.Month == 0:
		return PrecisionYear
	case d.Day == 0:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}

// DateTime returns the date as an xsd:dateTime lexical value, padding unknown
// components with the first month or day.
func (d Date) DateTime() string {
	if d.Year == 0 {
		return ""
	}
	month, day := max(d.Month, 1), max(d.Day, 1)
	return fmt.Sprintf("%04d-%02d-%02dT00:00:00", d.Year, month, day)
}

// Label returns a display form: "2020", "May 2020" or "May 7, 2020".
func (d Date) Label() string {
	switch d.Precision() {
	case PrecisionYear:
		return strconv.Itoa(d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%s %d", time.Month(d.Month), d.Year)
	case PrecisionDay:
		return fmt.Sprintf("%s %d, %d", time.Month(d.Month), d.Day, d.Year)
	default:
		return ""
	}
}
