// Package ianazone resolves UTC offsets for named IANA time zones at
// absolute instants, accounting for historical rules and daylight saving
// transitions.
//
// All rule knowledge is delegated to a formatting oracle (package tzoracle).
// The package reverse-engineers numeric offsets from the oracle's output,
// choosing between a direct token-parsing strategy and a calculated
// wall-clock strategy based on a one-time capability probe.
//
// Instants are epoch milliseconds as float64; offsets are signed minutes as
// float64. NaN is the sentinel for anything that cannot be resolved.
package ianazone

import "github.com/mohd-akram/luxon/tzoracle"

// ZoneType is the discriminator reported by Type for zones of this kind.
const ZoneType = "iana"

// Zoner is the contract shared by all zone kinds in the wider library.
// Equality is structural: two zones are equal when they share a type
// discriminator and a name.
type Zoner interface {
	Type() string
	Name() string
	IsUniversal() bool
	IsValid() bool
	Offset(ms float64) float64
	FormatOffset(ms float64, format OffsetFormat) string
	OffsetName(ms float64, opts OffsetNameOptions) string
	Equals(other Zoner) bool
}

// Zone is a named IANA time zone. Zones are immutable and interned: Create
// returns the same instance for the same name until ResetCache.
type Zone struct {
	name  string
	valid bool
	reg   *Registry
}

var _ Zoner = (*Zone)(nil)

// Create returns the Zone for name from the default registry.
func Create(name string) *Zone { return DefaultRegistry.Create(name) }

// IsValidZone reports whether name is an accepted IANA zone identifier.
func IsValidZone(name string) bool { return DefaultRegistry.IsValidZone(name) }

// IsValidSpecifier reports whether name is an accepted IANA zone identifier.
//
// Deprecated: Use IsValidZone instead.
func IsValidSpecifier(name string) bool { return IsValidZone(name) }

// ResetCache clears the default registry's zone identity cache, both
// formatter caches, and the resolved strategy. It simulates a fresh process
// state and is intended for tests.
func ResetCache() { DefaultRegistry.ResetCache() }

// Name returns the identifier the zone was created with.
func (z *Zone) Name() string { return z.name }

// Type returns the fixed discriminator for IANA zones.
func (z *Zone) Type() string { return ZoneType }

// IsUniversal reports whether the zone is a fixed, rule-free offset. IANA
// zones carry historical rules, so this is always false.
func (z *Zone) IsUniversal() bool { return false }

// IsValid reports whether the oracle accepted the zone name when the zone
// was constructed.
func (z *Zone) IsValid() bool { return z.valid }

// Offset returns the zone's offset from UTC in minutes at the instant ms,
// or NaN if the instant or zone cannot be resolved.
func (z *Zone) Offset(ms float64) float64 { return z.reg.offset(z.name, ms) }

// OffsetName returns a designation for the zone's offset at ms, such as
// "EDT" or "GMT+05:30", rendered by the registry oracle's name formatter.
// It returns "" when the oracle has no name formatter or the instant cannot
// be resolved.
func (z *Zone) OffsetName(ms float64, opts OffsetNameOptions) string {
	nf, ok := z.reg.oracle.(tzoracle.NameFormatter)
	if !ok {
		return ""
	}
	name, err := nf.OffsetName(z.name, ms, opts.Format, opts.Locale)
	if err != nil {
		return ""
	}
	return name
}

// Equals reports whether other is a zone of the same kind with the same name.
func (z *Zone) Equals(other Zoner) bool {
	return other != nil && other.Type() == z.Type() && other.Name() == z.name
}
