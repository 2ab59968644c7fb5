package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/New_York"

	// Recurrence holds RRULE lines as defined by RFC 5545,
	// e.g. "RRULE:FREQ=WEEKLY;BYDAY=MO,WE".
	Recurrence []string

	// ReminderMinutes, when set, replaces the calendar's default reminders
	// with a single popup this many minutes before the event. Zero means a
	// popup at the event start.
	ReminderMinutes *int64
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}
