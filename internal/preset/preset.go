// Package preset resolves named relative date ranges against a reference instant.
package preset

import "time"

// Preset names a relative date range.
type Preset string

// Known presets.
const (
	Today      Preset = "today"
	Yesterday  Preset = "yesterday"
	Last7Days  Preset = "last7days"
	Last30Days Preset = "last30days"
	ThisMonth  Preset = "thisMonth"
	LastMonth  Preset = "lastMonth"
)

// Default is the preset selected when nothing else was chosen.
const Default = Last30Days

// All lists the presets in menu order.
var All = []Preset{Today, Yesterday, Last7Days, Last30Days, ThisMonth, LastMonth}

// ISODateLayout is the calendar date layout stored in filter values.
const ISODateLayout = "2006-01-02"

// Label returns the display label for p. Unknown presets read as the default.
func (p Preset) Label() string {
	switch p {
	case Today:
		return "Today"
	case Yesterday:
		return "Yesterday"
	case Last7Days:
		return "Last 7 days"
	case ThisMonth:
		return "This month"
	case LastMonth:
		return "Last month"
	default:
		return "Last 30 days"
	}
}

// IsKnown returns true if p is one of the defined presets.
func (p Preset) IsKnown() bool {
	for _, known := range All {
		if p == known {
			return true
		}
	}
	return false
}

// Resolve maps a preset to the instant its range starts at and a display label.
// The result depends only on p and now.
func Resolve(p Preset, now time.Time) (time.Time, string) {
	year, month, day := now.Date()
	hour, minute, sec := now.Clock()
	nsec, loc := now.Nanosecond(), now.Location()

	switch p {
	case Today:
		return time.Date(year, month, day, 0, 0, 0, 0, loc), p.Label()
	case Yesterday:
		return time.Date(year, month, day-1, 0, 0, 0, 0, loc), p.Label()
	case Last7Days:
		return now.AddDate(0, 0, -7), p.Label()
	case ThisMonth:
		return time.Date(year, month, 1, hour, minute, sec, nsec, loc), p.Label()
	case LastMonth:
		// Day 0 normalises to the last day of the previous month.
		return time.Date(year, month, 0, hour, minute, sec, nsec, loc), p.Label()
	default:
		return now.AddDate(0, 0, -30), Last30Days.Label()
	}
}

// FormatISODate renders the calendar date of t in its own location.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}
