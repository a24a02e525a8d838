// Package worktime decides whether a date or an offset date-time is outside
// working hours in May 2024, Moscow time.
//
// Dates use YYYY-MM-DD. Date-times use YYYY-MM-DDThh:mm:ss±hh:mm, optionally
// with a fraction of a second and a bracketed region such as [Europe/Moscow].
// The numeric offset always decides the instant; the region is not reconciled
// with it.
//
// Malformed input fails with *FormatError (errors.Is ErrFormat). Well-formed
// input outside May 2024 fails with *ValidationError (errors.Is ErrValidation);
// the month is checked before the year. For date-times the check applies to the
// Moscow date.
//
// Weekends, May 1, May 9 and May 10 are days off. On other days the working
// window is [09:00, 18:00).
package worktime

var defaultChecker = NewChecker(nil)

// IsNonWorkingDate calls IsNonWorkingDate on a shared Checker without logging
func IsNonWorkingDate(text string) (bool, error) {
	return defaultChecker.IsNonWorkingDate(text)
}

// IsNonWorkingInstant calls IsNonWorkingInstant on a shared Checker without logging
func IsNonWorkingInstant(text string) (bool, error) {
	return defaultChecker.IsNonWorkingInstant(text)
}
