package reports

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for startDate/endDate. Date-only values are UTC midnight,
// zone-less date-times are read in the report zone.
var (
	zonedLayouts    = []string{time.RFC3339Nano}
	dateOnlyLayout  = "2006-01-02"
	zonelessLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	}
)

// ParseDate parses an ISO-8601 date or date-time string.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrMissingField
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, raw)
}

// ParseDateRange parses and validates both endpoints.
func ParseDateRange(startStr, endStr string, loc *time.Location) (DateRange, error) {
	if strings.TrimSpace(startStr) == "" || strings.TrimSpace(endStr) == "" {
		return DateRange{}, ErrMissingField
	}

	start, err := ParseDate(startStr, loc)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate(endStr, loc)
	if err != nil {
		return DateRange{}, err
	}

	dr := DateRange{StartDate: start, EndDate: end}
	if err := ValidateDateRange(dr); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

// ValidateDateRange must pass before any storage access. Equal endpoints are
// a valid single-day range.
func ValidateDateRange(dr DateRange) error {
	if dr.StartDate.IsZero() || dr.EndDate.IsZero() {
		return ErrMissingField
	}
	if dr.StartDate.After(dr.EndDate) {
		return ErrInvalidOrder
	}
	return nil
}

// NormalizeRange widens the range to whole UTC days: start at 00:00:00.000,
// end at 23:59:59.999.
func NormalizeRange(dr DateRange) (time.Time, time.Time) {
	s := dr.StartDate.UTC()
	e := dr.EndDate.UTC()
	start := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return start, end
}
