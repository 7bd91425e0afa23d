// Package format renders domain values for display. Formatting is
// presentation only; stored values stay in cents, fractional rates and UTC
// instants regardless of what these functions return.
package format

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultTimezone = "America/Chicago"

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location returns the display timezone, read once from DISPLAY_TIMEZONE.
// An unknown zone falls back to the default rather than failing.
func Location() *time.Location {
	locOnce.Do(func() {
		name := os.Getenv("DISPLAY_TIMEZONE")
		if name == "" {
			name = defaultTimezone
		}
		l, err := time.LoadLocation(name)
		if err != nil {
			l, err = time.LoadLocation(defaultTimezone)
			if err != nil {
				l = time.UTC
			}
		}
		loc = l
	})
	return loc
}

func groupThousands(digits string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// Currency renders integer cents as US dollars: 150000 -> "$1,500.00".
// Negative amounts carry a leading minus: -2500 -> "-$25.00".
func Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := cents / 100
	remainder := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(fmt.Sprintf("%d", dollars)), remainder)
}

// Percent renders a fractional rate as a percentage with two decimals:
// 0.07 -> "7.00%".
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// Date renders a medium date in the given zone: "Mar 15, 2026".
func Date(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Jan 2, 2006")
}

// TimeOfDay renders a 12-hour clock time in the given zone: "2:30 PM".
func TimeOfDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04 PM")
}

func calendarDay(t time.Time) (int, time.Month, int) {
	return t.Year(), t.Month(), t.Day()
}

// DayLabel renders a date relative to now, by calendar day in the given
// zone: "Today", "Tomorrow", "Yesterday", a weekday name within the next
// six days, or a medium date beyond that. Two instants on the same local
// day always get the same label even when they straddle midnight UTC.
func DayLabel(t, now time.Time, loc *time.Location) string {
	lt := t.In(loc)
	ln := now.In(loc)

	ty, tm, td := calendarDay(lt)
	ny, nm, nd := calendarDay(ln)
	if ty == ny && tm == nm && td == nd {
		return "Today"
	}

	// Day distance is counted in calendar days, not wall-clock hours: DST
	// days in the display zone run 23 or 25 hours, so the local dates are
	// re-anchored in UTC where every day is exactly 24h.
	dayNumber := func(x time.Time) int64 {
		y, m, d := calendarDay(x)
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	}
	diff := int(dayNumber(lt) - dayNumber(ln))

	switch {
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff >= 2 && diff <= 6:
		return lt.Format("Monday")
	default:
		return Date(t, loc)
	}
}

// Duration renders a span as hours and minutes: "1h 30m", "45m", "2h".
func Duration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int(d.Round(time.Minute) / time.Minute)
	h := total / 60
	m := total % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// TimeRange renders an appointment window on one day:
// "Mar 15, 2026, 2:30 PM - 4:00 PM".
func TimeRange(start, end time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s, %s - %s", Date(start, loc), TimeOfDay(start, loc), TimeOfDay(end, loc))
}
