package access

import (
	"regexp"
	"strings"
	"time"
)

const airedToday = "Aired Today"

var airedWeekday = regexp.MustCompile(`^Aired (Last )?(\w+)$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// AirDateFromLabel converts a relative radio label into a calendar date in now's location.
//
// "Aired Today" is today. "Aired <Weekday>" and "Aired Last <Weekday>" are the most
// recent past occurrence of that weekday; when today is that weekday both forms mean
// seven days ago.
func AirDateFromLabel(label string, now time.Time) (time.Time, bool) {
	label = strings.TrimSpace(label)
	today := midnight(now)

	if label == airedToday {
		return today, true
	}

	match := airedWeekday.FindStringSubmatch(label)
	if match == nil {
		return time.Time{}, false
	}

	target, ok := weekdays[strings.ToLower(match[2])]
	if !ok {
		return time.Time{}, false
	}

	daysAgo := (7 + int(now.Weekday()) - int(target)) % 7
	if daysAgo == 0 {
		daysAgo = 7
	}

	return today.AddDate(0, 0, -daysAgo), true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b in b's location. Negative when a is after b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
