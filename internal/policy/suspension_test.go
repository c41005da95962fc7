package policy

import (
	"testing"
	"time"
)

func TestEffectiveUnban_DateOnlyAdvancesOneDay(t *testing.T) {
	// A suspension end stored as a bare date (midnight) always ends after
	// the 18:51 cutoff of that day, so the effective unban is the next day.
	stored := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	got := EffectiveUnban(stored)
	want := time.Date(2024, 3, 11, 18, 51, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("EffectiveUnban(%v) = %v, want %v", stored, got, want)
	}
}

func TestEffectiveUnban_AlwaysAtCutoffOnDOrDPlusOne(t *testing.T) {
	for day := 1; day <= 28; day++ {
		stored := time.Date(2023, 11, day, 0, 0, 0, 0, time.UTC)
		got := EffectiveUnban(stored)
		if got.Hour() != 18 || got.Minute() != 51 || got.Second() != 0 {
			t.Fatalf("unban %v not at 18:51:00", got)
		}
		diff := got.Sub(stored)
		if diff < 0 || diff > 48*time.Hour {
			t.Fatalf("unban %v not on D or D+1 for %v", got, stored)
		}
	}
}

func TestEffectiveUnban_TimeOfDayBoundary(t *testing.T) {
	// Stored instants late enough in the day that the day's end no longer
	// exceeds stored+18:51 stay on the stored date.
	cases := []struct {
		stored time.Time
		day    int
	}{
		// 05:08:59 + 18:51 = 23:59:59, end of day is later: advance.
		{time.Date(2024, 3, 10, 5, 8, 59, 0, time.UTC), 11},
		// 05:09:00 + 18:51 = exactly midnight: no advance.
		{time.Date(2024, 3, 10, 5, 9, 0, 0, time.UTC), 10},
		{time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), 10},
	}
	for _, c := range cases {
		got := EffectiveUnban(c.stored)
		if got.Day() != c.day {
			t.Errorf("EffectiveUnban(%v) landed on day %d, want %d", c.stored, got.Day(), c.day)
		}
	}
}

func TestEffectiveUnban_DSTBoundaryStaysUTCAnchored(t *testing.T) {
	// 2024-03-10 is the US spring-forward date; the computation must not
	// depend on any local zone.
	stored := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	got := EffectiveUnban(stored)
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC instant, got %v", got.Location())
	}
	if !got.Equal(time.Date(2024, 3, 11, 18, 51, 0, 0, time.UTC)) {
		t.Fatalf("unexpected instant %v", got)
	}
}

func TestFormatUnban_LocalizesForDisplayOnly(t *testing.T) {
	stored := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	if got := FormatUnban(stored, ""); got != "11 March 2024 18:51 UTC" {
		t.Errorf("UTC fallback render = %q", got)
	}
	// New York is on EDT (-4) by March 11.
	if got := FormatUnban(stored, "America/New_York"); got != "11 March 2024 14:51 EDT" {
		t.Errorf("localized render = %q", got)
	}
	// Unknown zone names fall back to UTC rather than failing.
	if got := FormatUnban(stored, "Not/AZone"); got != "11 March 2024 18:51 UTC" {
		t.Errorf("unknown zone render = %q", got)
	}
}
