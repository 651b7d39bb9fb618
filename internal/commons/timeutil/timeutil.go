package timeutil

import "time"

// The console displays every timestamp in Indian Standard Time regardless of
// the operator's locale. IST has no DST, so a fixed offset is enough.
var ist = time.FixedZone("IST", 5*3600+30*60)

const displayLayout = "02-01-2006 03:04:05 PM"

// UTCToIST renders a UTC instant in IST for display. A nil timestamp renders
// as the empty string rather than a zero date.
func UTCToIST(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(ist).Format(displayLayout)
}

// ParseDate parses a date-only filter value (YYYY-MM-DD) as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
