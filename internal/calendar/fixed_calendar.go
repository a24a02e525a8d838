package calendar

import (
	"errors"
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/username/worktime/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	// SupportedYear and SupportedMonth bound every date the calendar answers for
	SupportedYear  = 2024
	SupportedMonth = time.May

	referenceZoneName = "Europe/Moscow"
)

var (
	ErrMonthNotSupported = errors.New("month not supported")
	ErrYearNotSupported  = errors.New("year not supported")
)

// Holidays observed in May 2024. Weekends are Saturday and Sunday.
var (
	LabourDay = &cal.Holiday{
		Name:      "Праздник Весны и Труда",
		Type:      cal.ObservancePublic,
		Month:     time.May,
		Day:       1,
		StartYear: SupportedYear,
		EndYear:   SupportedYear,
		Func:      cal.CalcDayOfMonth,
	}
	VictoryDay = &cal.Holiday{
		Name:      "День Победы",
		Type:      cal.ObservancePublic,
		Month:     time.May,
		Day:       9,
		StartYear: SupportedYear,
		EndYear:   SupportedYear,
		Func:      cal.CalcDayOfMonth,
	}
	// May 10 2024 is a day off carried over from Saturday January 6
	VictoryDayBridge = &cal.Holiday{
		Name:      "Перенос выходного дня",
		Type:      cal.ObservancePublic,
		Month:     time.May,
		Day:       10,
		StartYear: SupportedYear,
		EndYear:   SupportedYear,
		Func:      cal.CalcDayOfMonth,
	}
)

var (
	referenceZone = mustLoadLocation(referenceZoneName)
	workWindow    = WorkWindow{Start: 9 * time.Hour, End: 18 * time.Hour}
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load location %s: %v", name, err))
	}
	return loc
}

// ReferenceZone returns the zone every moment is classified in (Europe/Moscow, UTC+3)
func ReferenceZone() *time.Location {
	return referenceZone
}

// WorkWindow is a half-open time-of-day interval [Start, End)
type WorkWindow struct {
	Start time.Duration
	End   time.Duration
}

// DefaultWorkWindow returns the 09:00-18:00 working window
func DefaultWorkWindow() WorkWindow {
	return workWindow
}

// Contains reports whether the wall-clock time of t lies inside the window
func (w WorkWindow) Contains(t time.Time) bool {
	tod := dateutil.TimeOfDay(t)
	return tod >= w.Start && tod < w.End
}

// Hours returns the window length in whole hours
func (w WorkWindow) Hours() int {
	return int((w.End - w.Start) / time.Hour)
}

// FixedCalendar implements Calendar for the single supported month.
// It holds no mutable state and is safe for concurrent use.
type FixedCalendar struct {
	business *cal.BusinessCalendar
	window   WorkWindow
	logger   *zap.Logger
}

// NewFixedCalendar creates a FixedCalendar with the May 2024 holidays
func NewFixedCalendar(logger *zap.Logger) *FixedCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}

	business := cal.NewBusinessCalendar()
	business.SetWorkday(time.Saturday, false)
	business.SetWorkday(time.Sunday, false)
	business.AddHoliday(LabourDay, VictoryDay, VictoryDayBridge)

	return &FixedCalendar{
		business: business,
		window:   workWindow,
		logger:   logger,
	}
}

// WorkWindow returns the working window used for DayInfo.WorkingHours
func (fc *FixedCalendar) WorkWindow() WorkWindow {
	return fc.window
}

// Validate checks that the date falls in the supported month and year.
// The month is checked first.
func (fc *FixedCalendar) Validate(date time.Time) error {
	if date.Month() != SupportedMonth {
		return ErrMonthNotSupported
	}
	if date.Year() != SupportedYear {
		return ErrYearNotSupported
	}
	return nil
}

// IsWorkday checks if the given date is a working day
func (fc *FixedCalendar) IsWorkday(date time.Time) (bool, int, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day.
// The date is read in its own location; callers convert to ReferenceZone first.
func (fc *FixedCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	if err := fc.Validate(date); err != nil {
		return nil, err
	}

	day := dateutil.StartOfDay(date)
	info := &DayInfo{Date: day}

	if actual, observed, holiday := fc.business.IsHoliday(day); (actual || observed) && holiday != nil {
		info.Type = DayTypeHoliday
		info.Note = holiday.Name
	} else if dateutil.IsWeekend(day) {
		info.Type = DayTypeWeekend
	} else if fc.business.IsWorkday(day) {
		info.Type = DayTypeWorkday
		info.IsWorkday = true
		info.WorkingHours = fc.window.Hours()
	} else {
		// business calendar and weekend set disagree; treat as a day off
		info.Type = DayTypeWeekend
	}

	fc.logger.Debug("Day classified",
		zap.String("date", day.Format(dateutil.ISODateLayout)),
		zap.Stringer("type", info.Type))

	return info, nil
}

// GetMonthInfo returns calendar info for the entire month
func (fc *FixedCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, referenceZone)
	if err := fc.Validate(first); err != nil {
		return nil, fmt.Errorf("%d-%02d: %w", year, month, err)
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, referenceZone).Day()
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		dayInfo, err := fc.GetDayInfo(time.Date(year, month, day, 0, 0, 0, 0, referenceZone))
		if err != nil {
			return nil, err
		}

		switch dayInfo.Type {
		case DayTypeWorkday:
			monthInfo.WorkDays++
		case DayTypeWeekend:
			monthInfo.Weekends++
		case DayTypeHoliday:
			monthInfo.Holidays++
		}
		monthInfo.WorkingHours += dayInfo.WorkingHours
		monthInfo.Days = append(monthInfo.Days, *dayInfo)
	}

	fc.logger.Debug("Month info built",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("working_hours", monthInfo.WorkingHours))

	return monthInfo, nil
}
