package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
	_ "time/tzdata" // region names and Europe/Moscow without a system zoneinfo
)

const (
	// ISODateLayout is the only accepted calendar date layout: YYYY-MM-DD
	ISODateLayout = "2006-01-02"

	localDateTimeLayout = "2006-01-02T15:04:05"

	// MaxOffset is the largest accepted UTC offset magnitude (18:00)
	MaxOffset = 18 * time.Hour
)

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// date-time, optional fraction (up to nanoseconds), offset, optional [Region]
	offsetDateTimePattern = regexp.MustCompile(
		`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d{1,9})?)(Z|[+-]\d{2}:\d{2})(?:\[([^\[\]]+)\])?$`)
)

// ErrEmptyInput is returned when there is nothing to parse
var ErrEmptyInput = errors.New("empty input")

// OffsetDateTime is a parsed date-time with a numeric UTC offset.
// Time carries the offset as a fixed zone; Region is informational only.
type OffsetDateTime struct {
	Time   time.Time
	Offset time.Duration
	Region string
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// TimeOfDay returns the wall-clock time elapsed since midnight in the date's own location
func TimeOfDay(date time.Time) time.Duration {
	h, m, s := date.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(date.Nanosecond())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// ParseISODate parses a strict YYYY-MM-DD calendar date (UTC midnight).
// Single-digit fields, other separators and trailing text are rejected.
func ParseISODate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrEmptyInput
	}
	if !isoDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%q does not match YYYY-MM-DD", s)
	}

	date, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date: %w", err)
	}
	return date, nil
}

// ParseOffsetDateTime parses YYYY-MM-DDThh:mm:ss[.fraction](±hh:mm|Z)[Region].
//
// The numeric offset decides the instant. A bracketed region must name a known
// time zone, but it is not checked against the offset.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	if s == "" {
		return OffsetDateTime{}, ErrEmptyInput
	}

	m := offsetDateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return OffsetDateTime{}, fmt.Errorf("%q does not match YYYY-MM-DDThh:mm:ss±hh:mm", s)
	}
	localPart, offsetPart, region := m[1], m[2], m[3]

	offset, err := parseOffset(offsetPart)
	if err != nil {
		return OffsetDateTime{}, err
	}

	if region != "" {
		if _, err := time.LoadLocation(region); err != nil {
			return OffsetDateTime{}, fmt.Errorf("unknown time zone region %q: %w", region, err)
		}
	}

	zone := time.FixedZone(offsetPart, int(offset/time.Second))
	t, err := time.ParseInLocation(localDateTimeLayout, localPart, zone)
	if err != nil {
		return OffsetDateTime{}, fmt.Errorf("invalid date-time: %w", err)
	}

	return OffsetDateTime{
		Time:   t,
		Offset: offset,
		Region: region,
	}, nil
}

// parseOffset parses "Z", "+hh:mm" or "-hh:mm" within ±18:00
func parseOffset(s string) (time.Duration, error) {
	if s == "Z" {
		return 0, nil
	}

	hours, err := strconv.Atoi(s[1:3])
	if err != nil {
		return 0, fmt.Errorf("invalid offset hours %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(s[4:6])
	if err != nil {
		return 0, fmt.Errorf("invalid offset minutes %q: %w", s, err)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("offset minutes out of range: %s", s)
	}

	offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if offset > MaxOffset {
		return 0, fmt.Errorf("offset %s exceeds ±18:00", s)
	}
	if s[0] == '-' {
		offset = -offset
	}
	return offset, nil
}
