// Package unixtime converts proleptic Gregorian calendar dates to Unix
// timestamps without consulting time zone rules.
//
// The conversion mirrors the Go standard library's time package but takes the
// date as plain integers and never touches a time.Location. Callers in this
// module reinterpret zone-local wall clock fields as if they were UTC, so any
// rule lookup here would be circular.
package unixtime

// daysBeforeMonth[m-1] is the number of days in a non-leap year before the
// first day of month m.
var daysBeforeMonth = [12]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// FromDateTime returns the Unix timestamp in seconds for the given date and
// time, taken as UTC. It ignores leap seconds but respects leap years and
// assumes the proleptic Gregorian calendar. Years at or below zero are
// astronomical year numbers: year 0 is 1 BC, year -1 is 2 BC, and so on.
func FromDateTime(year, month, day, hour, min, sec int) int64 {
	d := daysSinceEpoch(year) + daysBeforeMonth[month-1] + uint64(day) - 1
	if month > 2 && IsLeapYear(year) {
		d++
	}
	abs := d*secondsPerDay + uint64(hour)*secondsPerHour + uint64(min)*secondsPerMinute + uint64(sec)
	return int64(abs) + (absoluteToInternal + internalToUnix)
}

// MilliFromDateTime is FromDateTime scaled to milliseconds.
func MilliFromDateTime(year, month, day, hour, min, sec int) int64 {
	return FromDateTime(year, month, day, hour, min, sec) * 1000
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar. The rule extends unchanged to years at or below zero.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month for year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// ValidDate reports whether the (year, month, day) triple names a real
// proleptic Gregorian calendar date.
func ValidDate(year, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= DaysInMonth(year, month)
}

// The constants were copied from time.go in the Go standard library's time package.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
