// Package format holds the display formatters for durations, timestamps and
// dates. All functions are pure; a malformed timestamp yields the zero-time
// rendering of the underlying layout.
package format

import (
	"fmt"
	"time"
)

// Itinerary timestamps are local to the airport and carry no offset, but the
// provider occasionally sends offset or date-only variants.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an itinerary timestamp, trying the known layouts in
// order.
func ParseTimestamp(s string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range timestampLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Duration renders minutes as "2 hr 5 min", the result-card form.
func Duration(minutes int) string {
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}

// DurationShort renders minutes as "2h 5m", the compact form used by the leg
// detail rows. Kept separate from Duration: the two forms are used in
// different views.
func DurationShort(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Time renders a timestamp as 24-hour "HH:MM".
func Time(timestamp string) string {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("15:04")
}

// Date renders a timestamp as "Fri, Aug 9".
func Date(timestamp string) string {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}
	return t.Format("Mon, Jan 2")
}

// StopLabel describes a stop count: "Nonstop", "1 stop", "2 stops".
func StopLabel(stopCount int) string {
	switch {
	case stopCount == 0:
		return "Nonstop"
	case stopCount == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stopCount)
	}
}
