package quickparse

import (
	"regexp"
	"strconv"
	"time"
)

// Every stage below is an ordered table of (trigger, interpreter) rules.
// Order is the only precedence mechanism: the first rule whose pattern
// matches anywhere in the working text wins, so specific phrases must be
// listed before the shorter phrases they contain ("next monday" before
// "monday", "!!!" before "!!"). Inside an alternation the longer spelling
// comes first for the same reason, so the removed span covers the whole
// word.

// Alternation fragments shared across tables.
const (
	// weekdayWord accepts full names and the unambiguous short forms that
	// follow an "every", longest spelling first.
	weekdayWord = `(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues|tue|wed|thurs|thu|fri|sat|sun)s?`

	// weekdayAnyCapture is weekdayWord with the day captured.
	weekdayAnyCapture = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues|tue|wed|thurs|thu|fri|sat|sun)`

	// weekdayFullWord accepts full names only. Bare short forms are too
	// easy to hit inside ordinary prose ("we sat down"), so a weekday used
	// as a date has to be written out.
	weekdayFullWord = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`

	monthWord = `(january|february|march|april|may|june|july|august|september|sept|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)`
)

// ── Clock times ──
// Matched against the original input rather than the working buffer, so a
// daypart word consumed by "every morning" still yields its clock time.

type timeRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string) (hour, minute int, ok bool)
}

var timeRules = []timeRule{
	{
		name:    "clock-colon",
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2}):(\d{2})\s*(am|pm)?\b`),
		resolve: func(m []string) (int, int, bool) {
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			if minute > 59 {
				return 0, 0, false
			}
			if m[3] != "" {
				return meridiemHour(hour, m[3]), minute, hour >= 1 && hour <= 12
			}
			return hour, minute, hour <= 23
		},
	},
	{
		name:    "clock-meridiem",
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})\s*(am|pm)\b`),
		resolve: func(m []string) (int, int, bool) {
			hour, _ := strconv.Atoi(m[1])
			return meridiemHour(hour, m[2]), 0, hour >= 1 && hour <= 12
		},
	},
	{
		name:    "noon",
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?noon\b`),
		resolve: func([]string) (int, int, bool) { return 12, 0, true },
	},
	{
		name:    "midnight",
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?midnight\b`),
		resolve: func([]string) (int, int, bool) { return 0, 0, true },
	},
	{
		name:    "tonight",
		pattern: regexp.MustCompile(`(?i)\btonight\b`),
		resolve: func([]string) (int, int, bool) { return 20, 0, true },
	},
	{
		name:    "daypart",
		pattern: regexp.MustCompile(`(?i)\b(?:in\s+the\s+)?(morning|afternoon|evening)\b`),
		resolve: func(m []string) (int, int, bool) {
			switch normalizeWord(m[1]) {
			case "morning":
				return 9, 0, true
			case "afternoon":
				return 15, 0, true
			}
			return 19, 0, true
		},
	},
	{
		// Bare "night" is left alone ("movie night"); the phrase form is
		// unambiguous.
		name:    "at-night",
		pattern: regexp.MustCompile(`(?i)\bat\s+night\b`),
		resolve: func([]string) (int, int, bool) { return 21, 0, true },
	},
}

// meridiemHour converts a 1..12 clock hour to 24h using am/pm.
func meridiemHour(hour int, meridiem string) int {
	hour = hour % 12
	if normalizeWord(meridiem) == "pm" {
		hour += 12
	}
	return hour
}

// ── Calendar dates ──

type dateRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string, now time.Time) (time.Time, bool)
}

var dateRules = []dateRule{
	{
		name:    "day-after-tomorrow",
		pattern: regexp.MustCompile(`(?i)\bday after tomorrow\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return startOfDay(now.AddDate(0, 0, 2)), true
		},
	},
	{
		name:    "tomorrow",
		pattern: regexp.MustCompile(`(?i)\b(?:tomorrow|tmrw|tmr)\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return startOfDay(now.AddDate(0, 0, 1)), true
		},
	},
	{
		name:    "today",
		pattern: regexp.MustCompile(`(?i)\btoday\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return startOfDay(now), true
		},
	},
	{
		// The matching time rule turns this into 20:00 today.
		name:    "tonight",
		pattern: regexp.MustCompile(`(?i)\btonight\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return startOfDay(now), true
		},
	},
	{
		name:    "next-week",
		pattern: regexp.MustCompile(`(?i)\bnext week\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return startOfDay(now.AddDate(0, 0, 7)), true
		},
	},
	{
		name:    "next-month",
		pattern: regexp.MustCompile(`(?i)\bnext month\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return startOfDay(now.AddDate(0, 1, 0)), true
		},
	},
	{
		name:    "next-weekday",
		pattern: regexp.MustCompile(`(?i)\bnext ` + weekdayFullWord + `\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			wd, ok := parseWeekdayName(m[1])
			if !ok {
				return time.Time{}, false
			}
			return nextWeekday(now, wd), true
		},
	},
	{
		name:    "weekday",
		pattern: regexp.MustCompile(`(?i)\b` + weekdayFullWord + `\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			wd, ok := parseWeekdayName(m[1])
			if !ok {
				return time.Time{}, false
			}
			return nextWeekday(now, wd), true
		},
	},
	{
		name:    "month-day",
		pattern: regexp.MustCompile(`(?i)\b` + monthWord + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			month, ok := parseMonthName(m[1])
			if !ok {
				return time.Time{}, false
			}
			day, _ := strconv.Atoi(m[2])
			return monthDay(now, month, day)
		},
	},
	{
		name:    "day-month",
		pattern: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthWord + `\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			month, ok := parseMonthName(m[2])
			if !ok {
				return time.Time{}, false
			}
			day, _ := strconv.Atoi(m[1])
			return monthDay(now, month, day)
		},
	},
	{
		// "the 15th" with a mandatory ordinal suffix, next occurrence of
		// that day of the month.
		name:    "day-of-month",
		pattern: regexp.MustCompile(`(?i)\b(?:on )?the (\d{1,2})(?:st|nd|rd|th)\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			day, _ := strconv.Atoi(m[1])
			if day < 1 || day > 31 {
				return time.Time{}, false
			}
			today := startOfDay(now)
			for i := 0; i < 3; i++ {
				d := time.Date(now.Year(), now.Month()+time.Month(i), day, 0, 0, 0, 0, now.Location())
				if d.Day() == day && !d.Before(today) {
					return d, true
				}
			}
			return time.Time{}, false
		},
	},
}

// ── Relative offsets ──

type relativeRule struct {
	name    string
	pattern *regexp.Regexp
	// timed marks rules that produce a moment rather than a day, which
	// also arms the exact-time reminder default.
	resolve func(m []string, now time.Time) (at time.Time, timed bool, ok bool)
}

var relativeRules = []relativeRule{
	{
		name:    "in-minutes",
		pattern: regexp.MustCompile(`(?i)\bin (\d{1,4}) ?(?:minutes?|mins?|m)\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool, bool) {
			n, _ := strconv.Atoi(m[1])
			return now.Add(time.Duration(n) * time.Minute), true, true
		},
	},
	{
		name:    "in-hours",
		pattern: regexp.MustCompile(`(?i)\bin (\d{1,3}) ?(?:hours?|hrs?|h)\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool, bool) {
			n, _ := strconv.Atoi(m[1])
			return now.Add(time.Duration(n) * time.Hour), true, true
		},
	},
	{
		name:    "in-days",
		pattern: regexp.MustCompile(`(?i)\bin (\d{1,3}) ?days?\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool, bool) {
			n, _ := strconv.Atoi(m[1])
			return startOfDay(now.AddDate(0, 0, n)), false, true
		},
	},
	{
		name:    "in-weeks",
		pattern: regexp.MustCompile(`(?i)\bin (\d{1,2}) ?(?:weeks?|wks?)\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool, bool) {
			n, _ := strconv.Atoi(m[1])
			return startOfDay(now.AddDate(0, 0, n*7)), false, true
		},
	},
	{
		name:    "in-months",
		pattern: regexp.MustCompile(`(?i)\bin (\d{1,2}) ?months?\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool, bool) {
			n, _ := strconv.Atoi(m[1])
			return startOfDay(now.AddDate(0, n, 0)), false, true
		},
	},
	{
		name:    "in-years",
		pattern: regexp.MustCompile(`(?i)\bin (\d{1,2}) ?years?\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool, bool) {
			n, _ := strconv.Atoi(m[1])
			return startOfDay(now.AddDate(n, 0, 0)), false, true
		},
	},
	{
		name:    "in-a-unit",
		pattern: regexp.MustCompile(`(?i)\bin an? (minute|min|hour|day|week|month|year)\b`),
		resolve: func(m []string, now time.Time) (time.Time, bool, bool) {
			switch normalizeWord(m[1]) {
			case "minute", "min":
				return now.Add(time.Minute), true, true
			case "hour":
				return now.Add(time.Hour), true, true
			case "day":
				return startOfDay(now.AddDate(0, 0, 1)), false, true
			case "week":
				return startOfDay(now.AddDate(0, 0, 7)), false, true
			case "month":
				return startOfDay(now.AddDate(0, 1, 0)), false, true
			}
			return startOfDay(now.AddDate(1, 0, 0)), false, true
		},
	},
}

// ── Advanced recurrence ──
// Interval repeats and ordinal weekdays. Checked before the simple table so
// "every 2nd tuesday" is not read as a plain weekly tuesday.

type advancedRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string, now time.Time) (recurrence, bool)
}

var advancedRules = []advancedRule{
	{
		name: "every-ordinal-weekday",
		pattern: regexp.MustCompile(
			`(?i)\bevery (?:(\d{1,2})(?:st|nd|rd|th)|last) ` + weekdayAnyCapture + `s?\b(?: of (?:the |each |every )?month)?`),
		resolve: func(m []string, now time.Time) (recurrence, bool) {
			week := MonthWeekLast
			if m[1] != "" {
				week, _ = strconv.Atoi(m[1])
				if week < 1 || week > 4 {
					return recurrence{}, false
				}
			}
			wd, ok := parseWeekdayName(m[2])
			if !ok {
				return recurrence{}, false
			}
			due, ok := nextOrdinalWeekday(now, week, wd)
			if !ok {
				return recurrence{}, false
			}
			return recurrence{
				repeatType: RepeatMonthly,
				advanced: &AdvancedRepeat{
					Frequency:   RepeatMonthly,
					Interval:    1,
					MonthlyType: MonthlyByWeekday,
					MonthlyWeek: week,
					MonthlyDay:  int(wd),
				},
				firstDue: due,
			}, true
		},
	},
	{
		name:    "every-other",
		pattern: regexp.MustCompile(`(?i)\bevery other (day|week|month|year)\b`),
		resolve: func(m []string, now time.Time) (recurrence, bool) {
			freq, due := unitStep(normalizeWord(m[1]), 2, now)
			return recurrence{
				repeatType: freq,
				advanced:   &AdvancedRepeat{Frequency: freq, Interval: 2},
				firstDue:   due,
			}, true
		},
	},
	{
		name:    "every-n-units",
		pattern: regexp.MustCompile(`(?i)\bevery (\d{1,2}) (hours?|days?|weeks?|months?|years?)\b`),
		resolve: func(m []string, now time.Time) (recurrence, bool) {
			n, _ := strconv.Atoi(m[1])
			if n < 1 {
				return recurrence{}, false
			}
			unit := normalizeWord(m[2])
			if unit == "hour" || unit == "hours" {
				return recurrence{
					repeatType: RepeatHourly,
					advanced:   &AdvancedRepeat{Frequency: RepeatHourly, Interval: n},
					firstDue:   now.Add(time.Duration(n) * time.Hour),
					timed:      true,
				}, true
			}
			freq, due := unitStep(unit, n, now)
			return recurrence{
				repeatType: freq,
				advanced:   &AdvancedRepeat{Frequency: freq, Interval: n},
				firstDue:   due,
			}, true
		},
	},
}

// unitStep maps a day/week/month/year unit to its repeat frequency and the
// first occurrence n units out.
func unitStep(unit string, n int, now time.Time) (RepeatType, time.Time) {
	switch {
	case hasPrefixWord(unit, "day"):
		return RepeatDaily, startOfDay(now.AddDate(0, 0, n))
	case hasPrefixWord(unit, "week"):
		return RepeatWeekly, startOfDay(now.AddDate(0, 0, n*7))
	case hasPrefixWord(unit, "month"):
		return RepeatMonthly, startOfDay(now.AddDate(0, n, 0))
	}
	return RepeatYearly, startOfDay(now.AddDate(n, 0, 0))
}

// ── Simple recurrence ──

type simpleRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string, now time.Time) (recurrence, bool)
}

var simpleRules = []simpleRule{
	{
		name:    "every-weekdays",
		pattern: regexp.MustCompile(`(?i)\b(?:every weekdays?|weekdays)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			due := startOfDay(now.AddDate(0, 0, 1))
			switch due.Weekday() {
			case time.Saturday:
				due = due.AddDate(0, 0, 2)
			case time.Sunday:
				due = due.AddDate(0, 0, 1)
			}
			return recurrence{repeatType: RepeatWeekdays, firstDue: due}, true
		},
	},
	{
		name:    "every-weekends",
		pattern: regexp.MustCompile(`(?i)\b(?:every weekends?|weekends)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			return recurrence{repeatType: RepeatWeekends, firstDue: nextWeekday(now, time.Saturday)}, true
		},
	},
	{
		// Daily with the daypart left in place for the clock-time pass,
		// which scans the original input and still sees it.
		name:    "every-daypart",
		pattern: regexp.MustCompile(`(?i)\bevery (?:morning|afternoon|evening|night)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			return recurrence{repeatType: RepeatDaily, firstDue: startOfDay(now.AddDate(0, 0, 1))}, true
		},
	},
	{
		name: "every-weekday-list",
		pattern: regexp.MustCompile(
			`(?i)\bevery (` + weekdayWord + `(?:(?:\s*,\s*|\s+and\s+|\s*&\s*)` + weekdayWord + `)*)\b`),
		resolve: func(m []string, now time.Time) (recurrence, bool) {
			days, ok := parseWeekdayList(m[1])
			if !ok {
				return recurrence{}, false
			}
			due := time.Time{}
			for _, d := range days {
				next := nextWeekday(now, time.Weekday(d))
				if due.IsZero() || next.Before(due) {
					due = next
				}
			}
			return recurrence{repeatType: RepeatCustom, days: days, firstDue: due}, true
		},
	},
	{
		name:    "every-day",
		pattern: regexp.MustCompile(`(?i)\b(?:every ?day|daily)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			return recurrence{repeatType: RepeatDaily, firstDue: startOfDay(now.AddDate(0, 0, 1))}, true
		},
	},
	{
		name:    "every-week",
		pattern: regexp.MustCompile(`(?i)\b(?:every week|weekly)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			return recurrence{repeatType: RepeatWeekly, firstDue: startOfDay(now.AddDate(0, 0, 7))}, true
		},
	},
	{
		name:    "every-month",
		pattern: regexp.MustCompile(`(?i)\b(?:every month|monthly)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			return recurrence{repeatType: RepeatMonthly, firstDue: startOfDay(now.AddDate(0, 1, 0))}, true
		},
	},
	{
		name:    "every-year",
		pattern: regexp.MustCompile(`(?i)\b(?:every year|yearly|annually)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			return recurrence{repeatType: RepeatYearly, firstDue: startOfDay(now.AddDate(1, 0, 0))}, true
		},
	},
	{
		name:    "every-hour",
		pattern: regexp.MustCompile(`(?i)\b(?:every hour|hourly)\b`),
		resolve: func(_ []string, now time.Time) (recurrence, bool) {
			return recurrence{repeatType: RepeatHourly, firstDue: now.Add(time.Hour), timed: true}, true
		},
	},
}

// ── Reminder phrases ──
// Extracted before any date work so "remind me 15 min before" cannot feed
// its "15" to the relative-time table. The offset is applied after the due
// moment is known.

type reminderRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string) (ReminderOffset, bool)
}

var reminderRules = []reminderRule{
	{
		name:    "remind-minutes",
		pattern: regexp.MustCompile(`(?i)\bremind (?:me )?(\d{1,3}) ?(?:minutes?|mins?|m) (?:before|early|ahead)\b`),
		resolve: func(m []string) (ReminderOffset, bool) {
			n, _ := strconv.Atoi(m[1])
			return bucketOffset(n), true
		},
	},
	{
		name:    "remind-hours",
		pattern: regexp.MustCompile(`(?i)\bremind (?:me )?(\d{1,2}) ?(?:hours?|hrs?|h) (?:before|early|ahead)\b`),
		resolve: func(m []string) (ReminderOffset, bool) {
			n, _ := strconv.Atoi(m[1])
			return bucketOffset(n * 60), true
		},
	},
	{
		name:    "remind-day",
		pattern: regexp.MustCompile(`(?i)\bremind (?:me )?(?:a|one|1) day (?:before|early|ahead)\b`),
		resolve: func([]string) (ReminderOffset, bool) { return Reminder1Day, true },
	},
	{
		// Bare "remind me" keeps the reminder at the due moment itself.
		name:    "remind-bare",
		pattern: regexp.MustCompile(`(?i)\bremind me\b`),
		resolve: func([]string) (ReminderOffset, bool) { return ReminderExact, true },
	},
}

// bucketOffset rounds a free-form lead time up to the nearest reminder
// bucket. Anything past half an hour collapses to one hour, a day or more
// to one day.
func bucketOffset(minutes int) ReminderOffset {
	switch {
	case minutes <= 5:
		return Reminder5Min
	case minutes <= 10:
		return Reminder10Min
	case minutes <= 15:
		return Reminder15Min
	case minutes <= 30:
		return Reminder30Min
	case minutes < 24*60:
		return Reminder1Hour
	}
	return Reminder1Day
}

// ── Priority markers ──

type priorityRule struct {
	name    string
	pattern *regexp.Regexp
	level   Priority
}

var priorityRules = []priorityRule{
	{name: "bangs-high", pattern: regexp.MustCompile(`!{3,}`), level: PriorityHigh},
	{name: "bangs-medium", pattern: regexp.MustCompile(`!!`), level: PriorityMedium},
	{name: "p1", pattern: regexp.MustCompile(`(?i)\bp1\b`), level: PriorityHigh},
	{name: "p2", pattern: regexp.MustCompile(`(?i)\bp2\b`), level: PriorityMedium},
	{name: "p3", pattern: regexp.MustCompile(`(?i)\bp3\b`), level: PriorityLow},
	{name: "bang-high", pattern: regexp.MustCompile(`(?i)!high\b`), level: PriorityHigh},
	{name: "bang-medium", pattern: regexp.MustCompile(`(?i)!med(?:ium)?\b`), level: PriorityMedium},
	{name: "bang-low", pattern: regexp.MustCompile(`(?i)!low\b`), level: PriorityLow},
	{name: "stars-high", pattern: regexp.MustCompile(`(?:^|\s)\*\*(?:\s|$)`), level: PriorityHigh},
	{name: "star-medium", pattern: regexp.MustCompile(`(?:^|\s)\*(?:\s|$)`), level: PriorityMedium},
	{name: "asap", pattern: regexp.MustCompile(`(?i)\basap\b`), level: PriorityHigh},
	{name: "urgent", pattern: regexp.MustCompile(`(?i)\burgent\b`), level: PriorityHigh},
	{name: "high-priority", pattern: regexp.MustCompile(`(?i)\bhigh priority\b`), level: PriorityHigh},
	{name: "low-priority", pattern: regexp.MustCompile(`(?i)\blow priority\b`), level: PriorityLow},
}

// ── Locations ──

type locationRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string) (string, bool)
}

var locationRules = []locationRule{
	{
		name: "known-venue",
		pattern: regexp.MustCompile(
			`(?i)\b(?:at|in) (?:the )?(gym|home|work|office|school|store|mall|library|bank|airport|church|park|hospital|dentist|doctor)\b`),
		resolve: func(m []string) (string, bool) { return normalizeWord(m[1]), true },
	},
	{
		// Capitalized run after "at": "at Blue Bottle", "at Mario's".
		// Case matters here, so no (?i).
		name:    "proper-noun",
		pattern: regexp.MustCompile(`\b[Aa]t ((?:[A-Z][\w']*)(?: [A-Z][\w']*)*)`),
		resolve: func(m []string) (string, bool) { return m[1], true },
	},
}

// ── Quick syntax ──
// Inline markers handled before any date work: description delimiters,
// effort estimates, tags and folders.

// descriptionDelims split title from description at the first occurrence,
// leftmost across all three.
var descriptionDelims = []string{" // ", " -- ", " | "}

type effortRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string) (hours float64, ok bool)
}

var effortRules = []effortRule{
	{
		name: "hours",
		pattern: regexp.MustCompile(
			`(?i)(?:^|\s)(?:~|est: ?|effort: ?)(\d+(?:\.\d+)?) ?(?:hours?|hrs?|h)(?: ?(\d{1,2}) ?(?:minutes?|mins?|m))?\b`),
		resolve: func(m []string) (float64, bool) {
			hours, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, false
			}
			if m[2] != "" {
				minutes, _ := strconv.Atoi(m[2])
				hours += float64(minutes) / 60
			}
			return hours, hours > 0
		},
	},
	{
		name:    "minutes",
		pattern: regexp.MustCompile(`(?i)(?:^|\s)(?:~|est: ?|effort: ?)(\d+) ?m(?:in(?:ute)?s?)?\b`),
		resolve: func(m []string) (float64, bool) {
			minutes, _ := strconv.Atoi(m[1])
			return float64(minutes) / 60, minutes > 0
		},
	},
}

var (
	quotedTagPattern    = regexp.MustCompile(`(?:^|\s)#"([^"]+)"`)
	bareTagPattern      = regexp.MustCompile(`(?:^|\s)#([A-Za-z0-9][\w/-]*)`)
	quotedFolderPattern = regexp.MustCompile(`(?:^|\s)@"([^"]+)"`)
	bareFolderPattern   = regexp.MustCompile(`(?:^|\s)@([A-Za-z0-9][\w/-]*)`)
)
