package quickparse

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatForDisplay renders badge strings for a parse preview, in the order
// the capture surfaces show them: due, reminder, recurrence, location,
// priority, effort, description.
func (p *Parser) FormatForDisplay(parsed ParsedTask) []string {
	return FormatForDisplayAt(parsed, time.Now().In(p.location))
}

// FormatForDisplayAt is FormatForDisplay against an explicit now.
func FormatForDisplayAt(parsed ParsedTask, now time.Time) []string {
	var badges []string
	if parsed.DueDate != nil {
		badges = append(badges, dueLabel(*parsed.DueDate, now))
	}
	// Exact-offset reminders fire at the due moment already on the badge,
	// so only a real lead time earns its own.
	if parsed.ReminderOffset != "" && parsed.ReminderOffset != ReminderExact {
		badges = append(badges, "Remind "+offsetLabel(parsed.ReminderOffset)+" before")
	}
	if label := repeatLabel(parsed); label != "" {
		badges = append(badges, label)
	}
	if parsed.Location != "" {
		badges = append(badges, "at "+parsed.Location)
	}
	if parsed.Priority != "" {
		badges = append(badges, priorityLabel(parsed.Priority))
	}
	if parsed.EstimatedHours > 0 {
		badges = append(badges, "~"+effortLabel(parsed.EstimatedHours))
	}
	if parsed.Description != "" {
		badges = append(badges, parsed.Description)
	}
	return badges
}

// dueLabel renders the due moment relative to now: Today, Tomorrow, the
// weekday name inside a week, otherwise the date. Midnight reads as a
// date-only due, so no clock is shown for it.
func dueLabel(due, now time.Time) string {
	day := startOfDay(due)
	today := startOfDay(now)
	diff := int(math.Round(day.Sub(today).Hours() / 24))

	var label string
	switch {
	case diff == 0:
		label = "Today"
	case diff == 1:
		label = "Tomorrow"
	case diff > 1 && diff < 7:
		label = due.Weekday().String()
	case due.Year() == now.Year():
		label = due.Format("Jan 2")
	default:
		label = due.Format("Jan 2, 2006")
	}
	if due.Hour() != 0 || due.Minute() != 0 {
		label += " " + due.Format("3:04 PM")
	}
	return label
}

func offsetLabel(off ReminderOffset) string {
	switch off {
	case Reminder5Min:
		return "5 min"
	case Reminder10Min:
		return "10 min"
	case Reminder15Min:
		return "15 min"
	case Reminder30Min:
		return "30 min"
	case Reminder1Hour:
		return "1 hour"
	case Reminder1Day:
		return "1 day"
	}
	return string(off)
}

func repeatLabel(parsed ParsedTask) string {
	if adv := parsed.AdvancedRepeat; adv != nil {
		if adv.MonthlyType == MonthlyByWeekday {
			return "Repeats every " + ordinalLabel(adv.MonthlyWeek) + " " + time.Weekday(adv.MonthlyDay).String()
		}
		if adv.Interval > 1 {
			return fmt.Sprintf("Repeats every %d %s", adv.Interval, unitName(adv.Frequency))
		}
		return "Repeats " + string(adv.Frequency)
	}
	switch parsed.RepeatType {
	case "":
		return ""
	case RepeatCustom:
		names := make([]string, 0, len(parsed.RepeatDays))
		for _, d := range parsed.RepeatDays {
			names = append(names, time.Weekday(d).String()[:3])
		}
		return "Repeats every " + strings.Join(names, ", ")
	case RepeatWeekdays:
		return "Repeats on weekdays"
	case RepeatWeekends:
		return "Repeats on weekends"
	}
	return "Repeats " + string(parsed.RepeatType)
}

func ordinalLabel(week int) string {
	switch week {
	case MonthWeekLast:
		return "last"
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", week)
}

func unitName(freq RepeatType) string {
	switch freq {
	case RepeatHourly:
		return "hours"
	case RepeatDaily:
		return "days"
	case RepeatWeekly:
		return "weeks"
	case RepeatMonthly:
		return "months"
	}
	return "years"
}

func priorityLabel(level Priority) string {
	switch level {
	case PriorityHigh:
		return "High priority"
	case PriorityMedium:
		return "Medium priority"
	}
	return "Low priority"
}

// effortLabel renders fractional hours the way they were typed: "2h",
// "1h 30m", "45m".
func effortLabel(hours float64) string {
	total := int(math.Round(hours * 60))
	h, m := total/60, total%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
