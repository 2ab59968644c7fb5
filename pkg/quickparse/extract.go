package quickparse

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// recurrence is the working result of a recurrence stage before it lands on
// the ParsedTask.
type recurrence struct {
	repeatType RepeatType
	days       []int
	advanced   *AdvancedRepeat
	firstDue   time.Time
	timed      bool
	matched    string
}

// extractDescription splits the text at the first inline delimiter,
// leftmost across all of them. Everything after it is kept verbatim.
func extractDescription(buf string) (desc, rest string, ok bool) {
	idx, width := -1, 0
	for _, delim := range descriptionDelims {
		if i := strings.Index(buf, delim); i >= 0 && (idx < 0 || i < idx) {
			idx, width = i, len(delim)
		}
	}
	if idx < 0 {
		return "", buf, false
	}
	desc = strings.TrimSpace(buf[idx+width:])
	if desc == "" {
		return "", buf, false
	}
	return desc, buf[:idx], true
}

func extractEffort(buf string) (hours float64, matched string, ok bool) {
	for _, rule := range effortRules {
		m := rule.pattern.FindStringSubmatch(buf)
		if m == nil {
			continue
		}
		if hours, ok := rule.resolve(m); ok {
			return hours, m[0], true
		}
	}
	return 0, "", false
}

// extractTags collects every #tag in order of appearance, quoted or bare,
// removing each from the buffer as it goes. Duplicates keep their first
// spelling.
func extractTags(buf string) (tags []string, rest string, ok bool) {
	seen := map[string]bool{}
	for {
		m := quotedTagPattern.FindStringSubmatchIndex(buf)
		if b := bareTagPattern.FindStringSubmatchIndex(buf); m == nil || (b != nil && b[0] < m[0]) {
			m = b
		}
		if m == nil {
			break
		}
		tag := buf[m[2]:m[3]]
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
		buf = buf[:m[0]] + " " + buf[m[1]:]
	}
	return tags, buf, len(tags) > 0
}

// extractFolder picks the first @folder, quoted winning over bare when it
// starts earlier. Only one folder is read; later ones stay in the text.
func extractFolder(buf string) (folder, matched string, ok bool) {
	m := quotedFolderPattern.FindStringSubmatchIndex(buf)
	if b := bareFolderPattern.FindStringSubmatchIndex(buf); m == nil || (b != nil && b[0] < m[0]) {
		m = b
	}
	if m == nil {
		return "", "", false
	}
	return buf[m[2]:m[3]], buf[m[0]:m[1]], true
}

func extractReminder(buf string) (off ReminderOffset, matched string, ok bool) {
	for _, rule := range reminderRules {
		m := rule.pattern.FindStringSubmatch(buf)
		if m == nil {
			continue
		}
		if off, ok := rule.resolve(m); ok {
			return off, m[0], true
		}
	}
	return "", "", false
}

func extractAdvancedRecurrence(buf string, now time.Time) (recurrence, bool) {
	for _, rule := range advancedRules {
		m := rule.pattern.FindStringSubmatch(buf)
		if m == nil {
			continue
		}
		if rec, ok := rule.resolve(m, now); ok {
			rec.matched = m[0]
			return rec, true
		}
	}
	return recurrence{}, false
}

func extractSimpleRecurrence(buf string, now time.Time) (recurrence, bool) {
	for _, rule := range simpleRules {
		m := rule.pattern.FindStringSubmatch(buf)
		if m == nil {
			continue
		}
		if rec, ok := rule.resolve(m, now); ok {
			rec.matched = m[0]
			return rec, true
		}
	}
	return recurrence{}, false
}

func extractRelative(buf string, now time.Time) (at time.Time, timed bool, matched string, ok bool) {
	for _, rule := range relativeRules {
		m := rule.pattern.FindStringSubmatch(buf)
		if m == nil {
			continue
		}
		if at, timed, ok := rule.resolve(m, now); ok {
			return at, timed, m[0], true
		}
	}
	return time.Time{}, false, "", false
}

func extractDate(buf string, now time.Time) (day time.Time, matched string, ok bool) {
	for _, rule := range dateRules {
		m := rule.pattern.FindStringSubmatch(buf)
		if m == nil {
			continue
		}
		if day, ok := rule.resolve(m, now); ok {
			return day, m[0], true
		}
	}
	return time.Time{}, "", false
}

func extractClockTime(s string) (hour, minute int, matched string, ok bool) {
	for _, rule := range timeRules {
		m := rule.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		if hour, minute, ok := rule.resolve(m); ok {
			return hour, minute, m[0], true
		}
	}
	return 0, 0, "", false
}

func extractPriority(buf string) (level Priority, matched string, ok bool) {
	for _, rule := range priorityRules {
		if m := rule.pattern.FindString(buf); m != "" {
			return rule.level, m, true
		}
	}
	return "", "", false
}

func extractLocation(buf string) (location, matched string, ok bool) {
	for _, rule := range locationRules {
		m := rule.pattern.FindStringSubmatch(buf)
		if m == nil {
			continue
		}
		if location, ok := rule.resolve(m); ok {
			return location, m[0], true
		}
	}
	return "", "", false
}

// weekdayListSep splits "mon, wed and fri" style lists.
var weekdayListSep = regexp.MustCompile(`(?i)\s*(?:,|&|\band\b)\s*`)

// parseWeekdayList turns a captured weekday list into sorted unique day
// numbers, Sunday = 0.
func parseWeekdayList(list string) ([]int, bool) {
	seen := map[int]bool{}
	var days []int
	for _, part := range weekdayListSep.Split(list, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		wd, ok := parseWeekdayName(part)
		if !ok {
			return nil, false
		}
		if !seen[int(wd)] {
			seen[int(wd)] = true
			days = append(days, int(wd))
		}
	}
	if len(days) == 0 {
		return nil, false
	}
	sort.Ints(days)
	return days, true
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func hasPrefixWord(s, prefix string) bool {
	return strings.HasPrefix(normalizeWord(s), prefix)
}
