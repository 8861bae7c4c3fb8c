package ianazone

import (
	"math"
	"regexp"
	"strconv"
)

// gmtTokenRE locates the offset token in the oracle's formatted output. The
// surrounding text is locale dependent free text, so the token may appear
// anywhere in the string.
var gmtTokenRE = regexp.MustCompile(`GMT(?:([+-])(\d{1,2}):(\d{2})(?::(\d{2}))?)?`)

// directOffset resolves the zone's offset at ms by parsing the offset token
// out of the oracle's formatted text. The token states the offset needed to
// reach UTC (POSIX sign convention), so the parsed sign is inverted to yield
// the zone's own offset from UTC. Returns NaN if the text cannot be obtained
// or carries no token.
func (r *Registry) directOffset(zone string, ms float64) float64 {
	f, err := r.offsetFormatter(zone)
	if err != nil {
		return math.NaN()
	}
	text, err := f.Format(ms)
	if err != nil {
		return math.NaN()
	}
	m := gmtTokenRE.FindStringSubmatch(text)
	if m == nil {
		return math.NaN()
	}
	if m[1] == "" {
		// A bare "GMT" designation means the zone is UTC itself.
		return 0
	}
	sign := float64(-1)
	if m[1] == "-" {
		sign = 1
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	var seconds int
	if m[4] != "" {
		seconds, _ = strconv.Atoi(m[4])
	}
	return sign * (float64(hours)*60 + float64(minutes) + float64(seconds)/60)
}
