package usecase

import (
	"fmt"
	"strings"

	"task-quickadd/pkg/quickparse"
)

// byDayCodes maps weekday numbers (Sunday=0) to RFC 5545 day codes.
var byDayCodes = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// buildRecurrenceRule renders the parsed recurrence as an RFC 5545 RRULE
// line, the format Google Calendar consumes. Returns "" for one-off tasks.
func buildRecurrenceRule(t quickparse.ParsedTask) string {
	if adv := t.AdvancedRepeat; adv != nil {
		var b strings.Builder
		b.WriteString("RRULE:FREQ=")
		b.WriteString(rruleFreq(adv.Frequency))

		if adv.Interval > 1 {
			fmt.Fprintf(&b, ";INTERVAL=%d", adv.Interval)
		}

		if adv.Frequency == quickparse.RepeatMonthly {
			switch adv.MonthlyType {
			case quickparse.MonthlyByWeekday:
				// MonthWeekLast is -1, which is exactly the RFC 5545
				// ordinal for "last", so the week number passes straight
				// through: BYDAY=2TU, BYDAY=-1FR.
				fmt.Fprintf(&b, ";BYDAY=%d%s", adv.MonthlyWeek, byDayCode(adv.MonthlyDay))
			case quickparse.MonthlyByDate:
				fmt.Fprintf(&b, ";BYMONTHDAY=%d", adv.MonthlyDay)
			}
		}

		return b.String()
	}

	switch t.RepeatType {
	case "":
		return ""
	case quickparse.RepeatWeekdays:
		return "RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"
	case quickparse.RepeatWeekends:
		return "RRULE:FREQ=WEEKLY;BYDAY=SA,SU"
	case quickparse.RepeatCustom:
		days := make([]string, 0, len(t.RepeatDays))
		for _, d := range t.RepeatDays {
			days = append(days, byDayCode(d))
		}
		if len(days) == 0 {
			return ""
		}
		return "RRULE:FREQ=WEEKLY;BYDAY=" + strings.Join(days, ",")
	}

	return "RRULE:FREQ=" + rruleFreq(t.RepeatType)
}

func rruleFreq(rt quickparse.RepeatType) string {
	switch rt {
	case quickparse.RepeatHourly:
		return "HOURLY"
	case quickparse.RepeatWeekly:
		return "WEEKLY"
	case quickparse.RepeatMonthly:
		return "MONTHLY"
	case quickparse.RepeatYearly:
		return "YEARLY"
	}
	return "DAILY"
}

func byDayCode(weekday int) string {
	if weekday < 0 || weekday >= len(byDayCodes) {
		return byDayCodes[0]
	}
	return byDayCodes[weekday]
}
