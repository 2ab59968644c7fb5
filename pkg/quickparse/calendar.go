package quickparse

import (
	"strings"
	"time"
)

// startOfDay returns midnight at the start of the given day, in its location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// atClock pins an hour and minute onto the day of t.
func atClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// nextWeekday returns the start of the next occurrence of the target weekday
// strictly after the day of base. A Monday asked for "monday" gets the one a
// week out, matching how people use bare weekday names when entering tasks.
func nextWeekday(base time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return startOfDay(base.AddDate(0, 0, daysUntil))
}

// nthWeekdayOfMonth returns the start of the nth occurrence of the target
// weekday within the given month, where week is 1 through 4 or MonthWeekLast.
// ok is false when the month has no such occurrence.
func nthWeekdayOfMonth(year int, month time.Month, week int, target time.Weekday, loc *time.Location) (time.Time, bool) {
	if week == MonthWeekLast {
		// Walk back from the last day of the month.
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
		offset := int(last.Weekday() - target)
		if offset < 0 {
			offset += 7
		}
		return last.AddDate(0, 0, -offset), true
	}
	if week < 1 || week > 4 {
		return time.Time{}, false
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := int(target - first.Weekday())
	if offset < 0 {
		offset += 7
	}
	day := first.AddDate(0, 0, offset+7*(week-1))
	if day.Month() != month {
		return time.Time{}, false
	}
	return day, true
}

// nextOrdinalWeekday finds the next "week-th target of the month" on or after
// the day of now, advancing month by month when the occurrence has passed.
// Months are anchored on the 1st so a late-month now cannot skip February.
func nextOrdinalWeekday(now time.Time, week int, target time.Weekday) (time.Time, bool) {
	today := startOfDay(now)
	for i := 0; i < 13; i++ {
		anchor := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		occ, ok := nthWeekdayOfMonth(anchor.Year(), anchor.Month(), week, target, now.Location())
		if ok && !occ.Before(today) {
			return occ, true
		}
	}
	return time.Time{}, false
}

// monthDay resolves a "Dec 25" style literal to its next occurrence: this
// year if the day has not passed, next year otherwise. ok is false for days
// the month does not have, like Feb 31.
func monthDay(now time.Time, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	today := startOfDay(now)
	for _, year := range []int{now.Year(), now.Year() + 1} {
		d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		if d.Month() != month {
			return time.Time{}, false
		}
		if !d.Before(today) {
			return d, true
		}
	}
	return time.Time{}, false
}

// weekdayNames maps full weekday names to their time.Weekday values.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// monthNames maps month names and their three-letter forms to time.Month.
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// parseWeekdayName looks up a weekday by full name or unambiguous prefix
// ("tues", "thu"). Abbreviations only appear after an "every", where a bare
// three-letter token cannot be an ordinary word.
func parseWeekdayName(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, "s")
	if wd, ok := weekdayNames[name]; ok {
		return wd, true
	}
	for full, wd := range weekdayNames {
		if len(name) >= 3 && strings.HasPrefix(full, name) {
			return wd, true
		}
	}
	return 0, false
}

// parseMonthName looks up a month by name or abbreviation.
func parseMonthName(name string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))]
	return m, ok
}
