package policy

import "time"

// Suspensions are lifted by a scheduled job that runs at 06:51 UTC; the
// displayed unban instant sits 12 hours later so cached pages have cycled
// by the time it arrives.
const (
	unbanHour   = 18
	unbanMinute = 51
)

// EffectiveUnban computes the instant a suspension ending on the stored date
// actually lifts: 18:51:00 UTC on that date, advanced by one day when the
// stored date's natural end-of-day falls after the cutoff. For a date-only
// value (stored at midnight) that is always the next day.
func EffectiveUnban(stored time.Time) time.Time {
	stored = stored.UTC()
	y, m, d := stored.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := day.AddDate(0, 0, 1)
	cutoff := stored.Add(unbanHour*time.Hour + unbanMinute*time.Minute)
	if dayEnd.After(cutoff) {
		day = day.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), unbanHour, unbanMinute, 0, 0, time.UTC)
}

// FormatUnban renders the effective unban instant in the viewer's timezone.
// tzName is an IANA zone name; empty or unknown names fall back to UTC.
// The computation stays UTC-anchored, only the rendering is localized, so
// DST boundaries cannot shift the instant itself.
func FormatUnban(stored time.Time, tzName string) string {
	unban := EffectiveUnban(stored)
	loc := time.UTC
	if tzName != "" {
		if l, err := time.LoadLocation(tzName); err == nil {
			loc = l
		}
	}
	return unban.In(loc).Format("2 January 2006 15:04 MST")
}
