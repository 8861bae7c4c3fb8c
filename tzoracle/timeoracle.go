package tzoracle

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
)

// maxInstant is the largest magnitude of epoch milliseconds the oracle
// accepts, roughly 273,790 years either side of the epoch. The limit matches
// the ECMA-262 time value range so that instants round-trip with scripting
// environments feeding this library.
const maxInstant = 8.64e15

var errBadInstant = errors.New("tzoracle: instant is not a finite timestamp")

// TimeOracle is an Oracle backed by the standard library's time package and
// its IANA rule data. The zero value is ready to use.
//
// TimeOracle also implements NameFormatter. The locale is accepted for
// interface compatibility; the standard library carries no localized zone
// display names, so the output does not vary by locale.
type TimeOracle struct{}

var (
	_ Oracle        = TimeOracle{}
	_ NameFormatter = TimeOracle{}
)

// OffsetFormatter returns a formatter producing the offset-token text shape
// for zone, or an error if zone is not an accepted identifier.
func (TimeOracle) OffsetFormatter(zone string) (OffsetFormatter, error) {
	loc, err := loadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &offsetFormatter{loc: loc}, nil
}

// FieldsFormatter returns a formatter producing the decomposed wall clock
// shape for zone, or an error if zone is not an accepted identifier.
func (TimeOracle) FieldsFormatter(zone string) (FieldsFormatter, error) {
	loc, err := loadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &fieldsFormatter{loc: loc}, nil
}

// OffsetName implements NameFormatter. NameShort yields the zone
// abbreviation at the instant when the rule data defines one; otherwise, and
// for NameLong, it yields a "GMT±HH:MM" designation carrying the zone's own
// offset from UTC (display convention, not the POSIX parse convention of the
// offset token).
func (TimeOracle) OffsetName(zone string, ms float64, format NameFormat, _ language.Tag) (string, error) {
	loc, err := loadLocation(zone)
	if err != nil {
		return "", err
	}
	t, err := instant(ms)
	if err != nil {
		return "", err
	}
	abbr, off := t.In(loc).Zone()
	if format == NameShort && abbr != "" {
		return abbr, nil
	}
	if off == 0 {
		return "GMT", nil
	}
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("GMT%s%02d:%02d", sign, off/3600, off/60%60), nil
}

// loadLocation resolves zone against the rule data. "Local" is rejected:
// it names the host environment, not an IANA identifier.
func loadLocation(zone string) (*time.Location, error) {
	if zone == "" || zone == "Local" {
		return nil, fmt.Errorf("tzoracle: invalid zone name %q", zone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("tzoracle: unknown zone %q: %w", zone, err)
	}
	return loc, nil
}

// instant converts epoch milliseconds to a time.Time, rejecting NaN,
// infinities and out-of-range values.
func instant(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxInstant {
		return time.Time{}, errBadInstant
	}
	sec := math.Floor(ms / 1000)
	nsec := (ms - sec*1000) * 1e6
	return time.Unix(int64(sec), int64(nsec)), nil
}

type offsetFormatter struct {
	loc *time.Location
}

// Format renders the instant as "month/day/year, hour:minute:second" wall
// clock text followed by the offset token in the POSIX sign convention.
func (f *offsetFormatter) Format(ms float64) (string, error) {
	t, err := instant(ms)
	if err != nil {
		return "", err
	}
	local := t.In(f.loc)
	_, off := local.Zone()
	return local.Format("01/02/2006, 15:04:05 ") + offsetToken(-off), nil
}

// offsetToken renders sec, in seconds west of Greenwich, as a GMT token.
// Second-granular offsets occur in pre-standardization local mean time.
func offsetToken(sec int) string {
	if sec == 0 {
		return "GMT"
	}
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	if s := sec % 60; s != 0 {
		return fmt.Sprintf("GMT%s%02d:%02d:%02d", sign, sec/3600, sec/60%60, s)
	}
	return fmt.Sprintf("GMT%s%02d:%02d", sign, sec/3600, sec/60%60)
}

type fieldsFormatter struct {
	loc *time.Location
}

// Parts returns the typed field breakdown of the instant's wall clock in the
// formatter's zone.
func (f *fieldsFormatter) Parts(ms float64) ([]Part, error) {
	t, err := instant(ms)
	if err != nil {
		return nil, err
	}
	year, era, month, day, hour, min, sec := clockFields(t.In(f.loc))
	return []Part{
		{Month, fmt.Sprintf("%02d", month)},
		{Literal, "/"},
		{Day, fmt.Sprintf("%02d", day)},
		{Literal, "/"},
		{Year, fmt.Sprintf("%04d", year)},
		{Literal, " "},
		{Era, era},
		{Literal, ", "},
		{Hour, fmt.Sprintf("%02d", hour)},
		{Literal, ":"},
		{Minute, fmt.Sprintf("%02d", min)},
		{Literal, ":"},
		{Second, fmt.Sprintf("%02d", sec)},
	}, nil
}

// Format returns the same fields as positional text in the fixed pattern
// "month/day/year era, hour:minute:second".
func (f *fieldsFormatter) Format(ms float64) (string, error) {
	t, err := instant(ms)
	if err != nil {
		return "", err
	}
	year, era, month, day, hour, min, sec := clockFields(t.In(f.loc))
	return fmt.Sprintf("%02d/%02d/%04d %s, %02d:%02d:%02d", month, day, year, era, hour, min, sec), nil
}

// clockFields decomposes t into era-designated wall clock fields. Proleptic
// years y <= 0 are reported as era "BC" with displayed year 1-y.
func clockFields(t time.Time) (year int, era string, month, day, hour, min, sec int) {
	year = t.Year()
	era = "AD"
	if year <= 0 {
		era = "BC"
		year = 1 - year
	}
	return year, era, int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()
}
