package tzoracle

import "golang.org/x/text/language"

// NameFormat selects the length of a zone offset name.
type NameFormat int

const (
	// NameShort requests the abbreviated designation, e.g. "EDT".
	NameShort NameFormat = iota
	// NameLong requests the spelled-out designation, e.g. "GMT+05:30".
	NameLong
)

// NameFormatter renders a localized designation for a zone's offset at an
// instant. It is an optional oracle capability: zone facades degrade to an
// empty name when their oracle does not implement it.
type NameFormatter interface {
	OffsetName(zone string, ms float64, format NameFormat, locale language.Tag) (string, error)
}
