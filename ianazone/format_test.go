package ianazone

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormatOffsetMinutes(t *testing.T) {
	cases := []struct {
		offset float64
		format OffsetFormat
		want   string
	}{
		{330, OffsetShort, "+05:30"},
		{330, OffsetNarrow, "+5:30"},
		{330, OffsetTechie, "+0530"},
		{-60, OffsetShort, "-01:00"},
		{-60, OffsetNarrow, "-1"},
		{-60, OffsetTechie, "-0100"},
		{0, OffsetShort, "+00:00"},
		{0, OffsetNarrow, "+0"},
		{0, OffsetTechie, "+0000"},
		{-585, OffsetShort, "-09:45"},
		{math.NaN(), OffsetShort, ""},
		// Second-granular historical offsets round to the nearest minute.
		{-(4*60 + 56 + 2.0/60), OffsetShort, "-04:56"},
	}
	for _, c := range cases {
		if got := FormatOffsetMinutes(c.offset, c.format); got != c.want {
			t.Errorf("FormatOffsetMinutes(%v, %v) = %q, want %q", c.offset, c.format, got, c.want)
		}
	}
}

func TestZoneFormatOffset(t *testing.T) {
	t.Cleanup(ResetCache)
	summer := ms(time.Date(2021, 7, 15, 12, 0, 0, 0, time.UTC))

	got := map[string]string{
		"Etc/GMT+1":        Create("Etc/GMT+1").FormatOffset(summer, OffsetShort),
		"Asia/Kolkata":     Create("Asia/Kolkata").FormatOffset(summer, OffsetTechie),
		"America/New_York": Create("America/New_York").FormatOffset(summer, OffsetNarrow),
		"Fantasia/Castle":  Create("Fantasia/Castle").FormatOffset(summer, OffsetShort),
	}
	want := map[string]string{
		"Etc/GMT+1":        "-01:00",
		"Asia/Kolkata":     "+0530",
		"America/New_York": "-4",
		"Fantasia/Castle":  "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FormatOffset mismatch (-want +got):\n%s", diff)
	}
}
