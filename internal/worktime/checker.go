package worktime

import (
	"errors"
	"time"

	"github.com/username/worktime/internal/calendar"
	"github.com/username/worktime/pkg/dateutil"
	"go.uber.org/zap"
)

// Reason explains why a moment is not working time
type Reason int

const (
	ReasonNone Reason = iota
	ReasonWeekend
	ReasonHoliday
	ReasonBeforeHours
	ReasonAfterHours
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "working"
	case ReasonWeekend:
		return "weekend"
	case ReasonHoliday:
		return "holiday"
	case ReasonBeforeHours:
		return "before working hours"
	case ReasonAfterHours:
		return "after working hours"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of a successful classification
type Verdict struct {
	NonWorking bool
	Reason     Reason
	// Local is the classified moment in the reference zone; midnight for plain dates
	Local time.Time
}

// Checker classifies dates and instants against the fixed May 2024 calendar.
// A Checker is immutable and may be shared between goroutines.
type Checker struct {
	calendar *calendar.FixedCalendar
	window   calendar.WorkWindow
	zone     *time.Location
	logger   *zap.Logger
}

// NewChecker creates a Checker; a nil logger disables logging
func NewChecker(logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}

	cal := calendar.NewFixedCalendar(logger)
	return &Checker{
		calendar: cal,
		window:   cal.WorkWindow(),
		zone:     calendar.ReferenceZone(),
		logger:   logger,
	}
}

// Calendar returns the calendar the checker classifies days with
func (c *Checker) Calendar() *calendar.FixedCalendar {
	return c.calendar
}

// IsNonWorkingDate reports whether a YYYY-MM-DD date is a weekend or holiday
func (c *Checker) IsNonWorkingDate(text string) (bool, error) {
	verdict, err := c.ClassifyDate(text)
	if err != nil {
		return false, err
	}
	return verdict.NonWorking, nil
}

// IsNonWorkingInstant reports whether an offset date-time, seen in the
// reference zone, falls on a day off or outside 09:00-18:00
func (c *Checker) IsNonWorkingInstant(text string) (bool, error) {
	verdict, err := c.ClassifyInstant(text)
	if err != nil {
		return false, err
	}
	return verdict.NonWorking, nil
}

// ClassifyDate is IsNonWorkingDate with the reason attached
func (c *Checker) ClassifyDate(text string) (Verdict, error) {
	date, err := dateutil.ParseISODate(text)
	if err != nil {
		return Verdict{}, &FormatError{Input: text, Err: err}
	}

	verdict, err := c.classifyDay(text, date)
	if err != nil {
		return Verdict{}, err
	}
	verdict.Local = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.zone)

	c.logger.Debug("Date classified",
		zap.String("input", text),
		zap.Bool("non_working", verdict.NonWorking),
		zap.Stringer("reason", verdict.Reason))

	return verdict, nil
}

// ClassifyInstant is IsNonWorkingInstant with the reason attached
func (c *Checker) ClassifyInstant(text string) (Verdict, error) {
	parsed, err := dateutil.ParseOffsetDateTime(text)
	if err != nil {
		return Verdict{}, &FormatError{Input: text, Err: err}
	}

	local := parsed.Time.In(c.zone)

	verdict, err := c.classifyDay(text, local)
	if err != nil {
		return Verdict{}, err
	}
	verdict.Local = local

	if !verdict.NonWorking && !c.window.Contains(local) {
		verdict.NonWorking = true
		if dateutil.TimeOfDay(local) < c.window.Start {
			verdict.Reason = ReasonBeforeHours
		} else {
			verdict.Reason = ReasonAfterHours
		}
	}

	c.logger.Debug("Instant classified",
		zap.String("input", text),
		zap.String("region", parsed.Region),
		zap.Time("local", local),
		zap.Bool("non_working", verdict.NonWorking),
		zap.Stringer("reason", verdict.Reason))

	return verdict, nil
}

// classifyDay validates the range and looks the day up in the calendar
func (c *Checker) classifyDay(text string, date time.Time) (Verdict, error) {
	dayInfo, err := c.calendar.GetDayInfo(date)
	if err != nil {
		return Verdict{}, validationError(text, err)
	}

	switch dayInfo.Type {
	case calendar.DayTypeHoliday:
		return Verdict{NonWorking: true, Reason: ReasonHoliday}, nil
	case calendar.DayTypeWeekend:
		return Verdict{NonWorking: true, Reason: ReasonWeekend}, nil
	default:
		return Verdict{}, nil
	}
}

func validationError(text string, err error) error {
	switch {
	case errors.Is(err, calendar.ErrMonthNotSupported):
		return &ValidationError{Input: text, Field: "month", Err: err}
	case errors.Is(err, calendar.ErrYearNotSupported):
		return &ValidationError{Input: text, Field: "year", Err: err}
	default:
		return err
	}
}
