package ianazone

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/mohd-akram/luxon/internal/unixtime"
	"github.com/mohd-akram/luxon/tzoracle"
)

// wallClock holds the zone-local fields reported by the oracle for one
// instant. The year is the era-designated display year, not the proleptic
// year.
type wallClock struct {
	year   int
	era    string
	month  int
	day    int
	hour   int
	minute int
	second int
}

// positionalRE parses the fixed fallback pattern
// "month/day/year era, hour:minute:second".
var positionalRE = regexp.MustCompile(`(\d+)/(\d+)/(\d+) (AD|BC), (\d+):(\d+):(\d+)`)

// calculatedOffset resolves the zone's offset at ms by asking the oracle for
// the zone-local wall clock at the instant, reinterpreting those fields as
// UTC, and comparing against the true instant. The oracle already applied
// the zone's offset to produce the fields, so the difference is exactly that
// offset.
func (r *Registry) calculatedOffset(zone string, ms float64) float64 {
	if math.IsNaN(ms) {
		return math.NaN()
	}
	f, err := r.fieldsFormatter(zone)
	if err != nil {
		return math.NaN()
	}
	wc, err := wallClockAt(f, ms)
	if err != nil {
		return math.NaN()
	}

	year := wc.year
	if wc.era == "BC" {
		// Map the era-designated year to astronomical numbering:
		// 1 BC is year 0, 2 BC is year -1.
		year = -abs(wc.year) + 1
	}
	hour := wc.hour
	// Some oracles render midnight under a 24-hour clock as hour 24.
	if hour == 24 {
		hour = 0
	}
	if !unixtime.ValidDate(year, wc.month, wc.day) {
		return math.NaN()
	}

	asUTC := float64(unixtime.MilliFromDateTime(year, wc.month, wc.day, hour, wc.minute, wc.second))

	// Compare against the true instant floored to whole seconds. The oracle
	// reports second granularity, so sub-second remainders must be dropped
	// toward negative infinity on both sides of the epoch.
	asTS := ms
	if over := math.Mod(asTS, 1000); over >= 0 {
		asTS -= over
	} else {
		asTS -= 1000 + over
	}
	return (asUTC - asTS) / 60000
}

// wallClockAt obtains the wall clock fields from the structured output,
// falling back to positional parsing for oracles without one.
func wallClockAt(f tzoracle.FieldsFormatter, ms float64) (wallClock, error) {
	parts, err := f.Parts(ms)
	if errors.Is(err, tzoracle.ErrNoParts) {
		text, ferr := f.Format(ms)
		if ferr != nil {
			return wallClock{}, ferr
		}
		return parseWallClock(text)
	}
	if err != nil {
		return wallClock{}, err
	}
	return wallClockFromParts(parts)
}

// wallClockFromParts decomposes a structured field list by field type.
func wallClockFromParts(parts []tzoracle.Part) (wallClock, error) {
	var (
		wc  wallClock
		err error
	)
	for _, p := range parts {
		switch p.Type {
		case tzoracle.Era:
			wc.era = p.Value
		case tzoracle.Year:
			wc.year, err = strconv.Atoi(p.Value)
		case tzoracle.Month:
			wc.month, err = strconv.Atoi(p.Value)
		case tzoracle.Day:
			wc.day, err = strconv.Atoi(p.Value)
		case tzoracle.Hour:
			wc.hour, err = strconv.Atoi(p.Value)
		case tzoracle.Minute:
			wc.minute, err = strconv.Atoi(p.Value)
		case tzoracle.Second:
			wc.second, err = strconv.Atoi(p.Value)
		}
		if err != nil {
			return wallClock{}, fmt.Errorf("bad field %q: %w", p.Value, err)
		}
	}
	return wc, nil
}

// parseWallClock extracts the fields from the fixed positional pattern.
func parseWallClock(text string) (wallClock, error) {
	m := positionalRE.FindStringSubmatch(text)
	if m == nil {
		return wallClock{}, fmt.Errorf("no wall clock fields in %q", text)
	}
	var (
		wc  wallClock
		err error
		dst = []*int{&wc.month, &wc.day, &wc.year, nil, &wc.hour, &wc.minute, &wc.second}
	)
	wc.era = m[4]
	for i, p := range dst {
		if p == nil {
			continue
		}
		*p, err = strconv.Atoi(m[i+1])
		if err != nil {
			return wallClock{}, fmt.Errorf("bad field %q: %w", m[i+1], err)
		}
	}
	return wc, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
