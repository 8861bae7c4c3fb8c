package ianazone

import (
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/mohd-akram/luxon/tzoracle"
)

// OffsetFormat selects the rendering of a numeric offset.
type OffsetFormat int

const (
	// OffsetShort renders "+05:30".
	OffsetShort OffsetFormat = iota
	// OffsetNarrow renders "+5:30", or "+5" on the whole hour.
	OffsetNarrow
	// OffsetTechie renders "+0530".
	OffsetTechie
)

// OffsetNameOptions configure Zone.OffsetName.
type OffsetNameOptions struct {
	Format tzoracle.NameFormat
	Locale language.Tag
}

// FormatOffset renders the zone's offset at ms in the requested format, or
// "" when the offset cannot be resolved.
func (z *Zone) FormatOffset(ms float64, format OffsetFormat) string {
	return FormatOffsetMinutes(z.Offset(ms), format)
}

// FormatOffsetMinutes renders a signed offset in minutes as text. Fractional
// offsets are rounded to the nearest minute. NaN renders as "".
func FormatOffsetMinutes(offset float64, format OffsetFormat) string {
	if math.IsNaN(offset) {
		return ""
	}
	minutes := int(math.Round(offset))
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	hours, mins := minutes/60, minutes%60
	switch format {
	case OffsetNarrow:
		if mins == 0 {
			return fmt.Sprintf("%s%d", sign, hours)
		}
		return fmt.Sprintf("%s%d:%d", sign, hours, mins)
	case OffsetTechie:
		return fmt.Sprintf("%s%02d%02d", sign, hours, mins)
	default:
		return fmt.Sprintf("%s%02d:%02d", sign, hours, mins)
	}
}
