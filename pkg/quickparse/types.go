package quickparse

import "time"

// Priority is the urgency level extracted from markers like "p1", "!!!",
// "**" or words like "asap".
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RepeatType classifies how a task recurs. Custom means "specific weekdays",
// with the days listed in ParsedTask.RepeatDays.
type RepeatType string

const (
	RepeatHourly   RepeatType = "hourly"
	RepeatDaily    RepeatType = "daily"
	RepeatWeekly   RepeatType = "weekly"
	RepeatMonthly  RepeatType = "monthly"
	RepeatYearly   RepeatType = "yearly"
	RepeatWeekdays RepeatType = "weekdays"
	RepeatWeekends RepeatType = "weekends"
	RepeatCustom   RepeatType = "custom"
)

// ReminderOffset is the bucketed lead time between the reminder and the due
// moment. Free-form phrases like "remind me 12 min before" are rounded up to
// the nearest bucket.
type ReminderOffset string

const (
	ReminderExact  ReminderOffset = "exact"
	Reminder5Min   ReminderOffset = "5min"
	Reminder10Min  ReminderOffset = "10min"
	Reminder15Min  ReminderOffset = "15min"
	Reminder30Min  ReminderOffset = "30min"
	Reminder1Hour  ReminderOffset = "1hour"
	Reminder1Day   ReminderOffset = "1day"
)

// Minutes returns the lead time as whole minutes before the due moment.
// Exact and unknown offsets are zero.
func (o ReminderOffset) Minutes() int {
	switch o {
	case Reminder5Min:
		return 5
	case Reminder10Min:
		return 10
	case Reminder15Min:
		return 15
	case Reminder30Min:
		return 30
	case Reminder1Hour:
		return 60
	case Reminder1Day:
		return 24 * 60
	}
	return 0
}

// MonthlyType says whether a monthly advanced recurrence pins a calendar
// date or an ordinal weekday ("every 2nd Tuesday").
type MonthlyType string

const (
	MonthlyByDate    MonthlyType = "date"
	MonthlyByWeekday MonthlyType = "weekday"
)

// MonthWeekLast marks the "last <weekday> of the month" ordinal.
const MonthWeekLast = -1

// AdvancedRepeat describes recurrences too irregular for RepeatType alone:
// interval repeats ("every 3 days") and ordinal weekdays ("every 2nd Tuesday").
type AdvancedRepeat struct {
	// Frequency is the base unit: hourly, daily, weekly, monthly or yearly.
	Frequency RepeatType `json:"frequency"`
	// Interval is the step between occurrences in Frequency units.
	// Zero means one.
	Interval int `json:"interval,omitempty"`
	// MonthlyType is set for monthly recurrences: "date" pins a day of the
	// month, "weekday" pins an ordinal weekday.
	MonthlyType MonthlyType `json:"monthly_type,omitempty"`
	// MonthlyWeek is the ordinal week for weekday-pinned recurrences:
	// 1 through 4, or MonthWeekLast for "last".
	MonthlyWeek int `json:"monthly_week,omitempty"`
	// MonthlyDay holds the day of month for date-pinned recurrences, or the
	// weekday number (Sunday=0) for weekday-pinned ones. Not omitted when
	// empty because Sunday is a valid zero.
	MonthlyDay int `json:"monthly_day"`
}

// ParsedTask is the structured reading of one line of task-entry text.
// Fields the text did not mention stay at their zero values. The struct is a
// plain value: parsing never assigns identity and never persists anything.
type ParsedTask struct {
	// Text is the canonicalized title: the input minus every recognized
	// phrase, with whitespace collapsed and dangling connectives trimmed.
	// Never empty; falls back to the trimmed original input.
	Text string `json:"text"`

	// DueDate is the resolved due moment, if any date, time or recurrence
	// phrase fired.
	DueDate *time.Time `json:"due_date,omitempty"`

	// ReminderTime is DueDate minus the reminder offset. Present only when
	// DueDate is present and either a clock time or a reminder phrase fired.
	ReminderTime   *time.Time     `json:"reminder_time,omitempty"`
	ReminderOffset ReminderOffset `json:"reminder_offset,omitempty"`

	Priority Priority `json:"priority,omitempty"`

	// RepeatType is set for any recurrence. RepeatDays lists the weekday
	// numbers (Sunday=0) and is only populated when RepeatType is custom.
	RepeatType RepeatType `json:"repeat_type,omitempty"`
	RepeatDays []int      `json:"repeat_days,omitempty"`

	// AdvancedRepeat is set for interval and ordinal-weekday recurrences.
	// When present, RepeatType mirrors its Frequency.
	AdvancedRepeat *AdvancedRepeat `json:"advanced_repeat,omitempty"`

	Location   string   `json:"location,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	FolderName string   `json:"folder_name,omitempty"`

	// Description holds the text after a " // ", " -- " or " | " delimiter,
	// kept verbatim apart from surrounding whitespace.
	Description string `json:"description,omitempty"`

	// EstimatedHours is the effort estimate from "~30m", "~1h30m",
	// "est: 2h" style markers, in fractional hours.
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
}

// HasSchedule reports whether parsing found anything calendar-worthy:
// a due date or a recurrence.
func (t ParsedTask) HasSchedule() bool {
	return t.DueDate != nil || t.RepeatType != ""
}
