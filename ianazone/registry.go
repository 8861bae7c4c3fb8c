package ianazone

import (
	"sync"

	"github.com/mohd-akram/luxon/tzoracle"
)

// Registry holds the process-scoped state behind the package-level zone
// functions: the zone identity cache, one formatter cache per resolution
// strategy, and the lazily resolved active strategy. Formatter construction
// is expensive and formatters are stateless, so at most one formatter exists
// per zone name and strategy until ResetCache.
//
// A Registry is safe for concurrent use.
type Registry struct {
	oracle tzoracle.Oracle

	mu         sync.Mutex
	zones      map[string]*Zone
	offsetFmts map[string]tzoracle.OffsetFormatter
	fieldsFmts map[string]tzoracle.FieldsFormatter
	active     strategy
}

// DefaultRegistry backs the package-level Create, IsValidZone and ResetCache
// functions. It resolves against the standard library's zone rule data.
var DefaultRegistry = NewRegistry(tzoracle.TimeOracle{})

// NewRegistry returns a Registry that resolves offsets against oracle.
func NewRegistry(oracle tzoracle.Oracle) *Registry {
	return &Registry{
		oracle:     oracle,
		zones:      make(map[string]*Zone),
		offsetFmts: make(map[string]tzoracle.OffsetFormatter),
		fieldsFmts: make(map[string]tzoracle.FieldsFormatter),
	}
}

// Create returns the Zone for name, constructing and caching it on first
// use. Repeated calls with the same name return the same instance. The
// zone's validity is decided once, at construction.
func (r *Registry) Create(name string) *Zone {
	r.mu.Lock()
	defer r.mu.Unlock()
	if z, ok := r.zones[name]; ok {
		return z
	}
	z := &Zone{name: name, valid: r.IsValidZone(name), reg: r}
	r.zones[name] = z
	return z
}

// IsValidZone reports whether the oracle accepts name as a zone identifier.
// The empty name is rejected without consulting the oracle; any oracle
// rejection maps to false.
func (r *Registry) IsValidZone(name string) bool {
	if name == "" {
		return false
	}
	_, err := r.oracle.OffsetFormatter(name)
	return err == nil
}

// ResetCache clears the zone identity cache, both formatter caches, and the
// resolved strategy, returning the registry to its initial state.
func (r *Registry) ResetCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zones = make(map[string]*Zone)
	r.offsetFmts = make(map[string]tzoracle.OffsetFormatter)
	r.fieldsFmts = make(map[string]tzoracle.FieldsFormatter)
	r.active = strategyUnresolved
}

// offsetFormatter returns the memoized offset-token formatter for zone,
// constructing one on first use. Construction runs outside the lock;
// a failed construction is not cached.
func (r *Registry) offsetFormatter(zone string) (tzoracle.OffsetFormatter, error) {
	r.mu.Lock()
	f, ok := r.offsetFmts[zone]
	r.mu.Unlock()
	if ok {
		return f, nil
	}
	f, err := r.oracle.OffsetFormatter(zone)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.offsetFmts[zone] = f
	r.mu.Unlock()
	return f, nil
}

// fieldsFormatter returns the memoized wall-clock formatter for zone,
// constructing one on first use.
func (r *Registry) fieldsFormatter(zone string) (tzoracle.FieldsFormatter, error) {
	r.mu.Lock()
	f, ok := r.fieldsFmts[zone]
	r.mu.Unlock()
	if ok {
		return f, nil
	}
	f, err := r.oracle.FieldsFormatter(zone)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.fieldsFmts[zone] = f
	r.mu.Unlock()
	return f, nil
}

// offset resolves zone's offset at ms using the active strategy.
func (r *Registry) offset(zone string, ms float64) float64 {
	if r.activeStrategy() == strategyDirect {
		return r.directOffset(zone, ms)
	}
	return r.calculatedOffset(zone, ms)
}
