package model

import "time"

// TaskDraft is the outbound record assembled from one quick-add line.
// The service returns it to callers and pushes it to Google Calendar when
// a client is configured; it never stores the draft itself.
type TaskDraft struct {
	ID             string     // Draft UUID, assigned at schedule time
	Title          string     // Canonical title with grammar phrases removed
	RawText        string     // Original input line
	DueDate        *time.Time // Resolved due moment in the parser timezone
	ReminderTime   *time.Time // Absolute reminder moment
	ReminderOffset string     // "exact", "15min", "1hour", ...
	Priority       string     // "high", "medium", "low"
	RepeatType     string     // "daily", "weekly", "custom", ...
	RepeatDays     []int      // Weekday numbers for custom repeats (0=Sunday)
	RecurrenceRule string     // RFC 5545 RRULE line, empty for one-off tasks
	Location       string
	Tags           []string
	FolderName     string
	Description    string
	EstimatedHours float64
	CalendarLink   string // HtmlLink of the created calendar event, if any
	CreatedBy      string // Scope user id
	CreatedAt      time.Time
}
