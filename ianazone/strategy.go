package ianazone

// strategy selects which resolver answers offset queries.
type strategy int

const (
	strategyUnresolved strategy = iota
	strategyDirect
	strategyCalculated
)

// activeStrategy returns the resolver strategy for this registry, probing
// the direct resolver on first use. The probe runs outside the lock and the
// first committed result wins, so concurrent first queries agree.
func (r *Registry) activeStrategy() strategy {
	r.mu.Lock()
	s := r.active
	r.mu.Unlock()
	if s != strategyUnresolved {
		return s
	}

	s = strategyCalculated
	if r.probeDirect() {
		s = strategyDirect
	}

	r.mu.Lock()
	if r.active == strategyUnresolved {
		r.active = s
	}
	s = r.active
	r.mu.Unlock()
	return s
}

// probeDirect checks the direct resolver against three zones whose offsets
// are fixed by construction: Etc/GMT at zero, and Etc/GMT+1 and Etc/GMT-1,
// whose POSIX-signed names put them at -60 and +60 minutes from UTC. Any
// mismatch, including a NaN from an oracle that lacks the offset-token
// capability, selects the calculated strategy.
func (r *Registry) probeDirect() bool {
	probes := []struct {
		zone string
		want float64
	}{
		{"Etc/GMT", 0},
		{"Etc/GMT+1", -60},
		{"Etc/GMT-1", 60},
	}
	for _, p := range probes {
		if r.directOffset(p.zone, 0) != p.want {
			return false
		}
	}
	return true
}
