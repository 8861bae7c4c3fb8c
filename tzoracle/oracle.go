// Package tzoracle defines the locale-aware formatting oracle that supplies
// all time zone rule knowledge to the zone offset core, and provides a
// default oracle backed by the standard library.
//
// The core never reads rule data itself. Instead it constructs formatters
// bound to a zone name and reverse-engineers numeric offsets from their
// output. Formatter construction is the expensive operation; callers are
// expected to memoize formatters per zone name.
package tzoracle

import "errors"

// ErrNoParts is returned by FieldsFormatter.Parts when the oracle cannot
// produce a structured field breakdown. Callers fall back to positional
// parsing of the Format output.
var ErrNoParts = errors.New("tzoracle: structured parts not supported")

// PartType identifies a field in a structured formatter output.
type PartType int

const (
	Literal PartType = iota
	Era
	Year
	Month
	Day
	Hour
	Minute
	Second
)

// Part is one typed field of a structured formatter output.
type Part struct {
	Type  PartType
	Value string
}

// OffsetFormatter formats an instant as locale-dependent free text containing
// a single offset token of the shape "GMT", optionally followed by a signed
// hh:mm or hh:mm:ss component.
//
// The token uses the POSIX sign convention: it states the offset to add to
// local time to reach UTC. A zone one hour east of Greenwich therefore
// formats as "GMT-01:00". A bare "GMT" token means the zone is UTC itself.
type OffsetFormatter interface {
	Format(ms float64) (string, error)
}

// FieldsFormatter formats an instant as the zone's local wall clock fields
// with an era designator.
type FieldsFormatter interface {
	// Parts returns the typed field breakdown of the instant. Oracles
	// without structured output return ErrNoParts.
	Parts(ms float64) ([]Part, error)
	// Format returns the fields as positional text in the fixed pattern
	// "month/day/year era, hour:minute:second" with a 24-hour clock and
	// the era designator "AD" or "BC".
	Format(ms float64) (string, error)
}

// Oracle constructs formatters bound to a single zone name and output shape.
// Both constructors reject unknown zone names with an error.
type Oracle interface {
	OffsetFormatter(zone string) (OffsetFormatter, error)
	FieldsFormatter(zone string) (FieldsFormatter, error)
}
