package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-quickadd/internal/model"
	"task-quickadd/internal/quickadd"
	"task-quickadd/pkg/gcalendar"
	"task-quickadd/pkg/quickparse"
)

// Schedule parses one line and assembles the outbound task draft. A due
// date is required: anything else has nothing to put on a calendar.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input quickadd.ScheduleInput) (quickadd.ScheduleOutput, error) {
	text := strings.TrimSpace(input.RawText)
	if text == "" {
		return quickadd.ScheduleOutput{}, quickadd.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Schedule: user=%s input_length=%d", sc.UserID, len(text))

	now := time.Now().In(uc.parser.Location())
	parsed := uc.parser.ParseAt(text, now)
	if parsed.DueDate == nil {
		return quickadd.ScheduleOutput{}, quickadd.ErrNothingToSchedule
	}

	draft := buildDraft(sc, text, parsed, now)

	draft.CalendarLink = uc.tryCreateCalendarEvent(ctx, parsed, &draft, input.DurationMinutes)

	uc.l.Infof(ctx, "Schedule: draft %s assembled for %q due=%s", draft.ID, draft.Title, parsed.DueDate.Format(time.RFC3339))

	return quickadd.ScheduleOutput{
		Parsed: parsed,
		Draft:  draft,
		Badges: quickparse.FormatForDisplayAt(parsed, now),
	}, nil
}

// buildDraft flattens the parse result into the outbound record.
func buildDraft(sc model.Scope, rawText string, parsed quickparse.ParsedTask, now time.Time) model.TaskDraft {
	return model.TaskDraft{
		ID:             uuid.NewString(),
		Title:          parsed.Text,
		RawText:        rawText,
		DueDate:        parsed.DueDate,
		ReminderTime:   parsed.ReminderTime,
		ReminderOffset: string(parsed.ReminderOffset),
		Priority:       string(parsed.Priority),
		RepeatType:     string(parsed.RepeatType),
		RepeatDays:     parsed.RepeatDays,
		RecurrenceRule: buildRecurrenceRule(parsed),
		Location:       parsed.Location,
		Tags:           parsed.Tags,
		FolderName:     parsed.FolderName,
		Description:    parsed.Description,
		EstimatedHours: parsed.EstimatedHours,
		CreatedBy:      sc.UserID,
		CreatedAt:      now,
	}
}

// tryCreateCalendarEvent attempts to create a Google Calendar event.
// Returns the event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, parsed quickparse.ParsedTask, draft *model.TaskDraft, durationMin int) string {
	if uc.calendar == nil {
		return ""
	}

	duration := durationMin
	if duration <= 0 && parsed.EstimatedHours > 0 {
		duration = int(parsed.EstimatedHours * 60)
	}
	if duration <= 0 {
		duration = uc.defaultDurationMin
	}
	if duration <= 0 {
		duration = 30
	}

	startTime := *parsed.DueDate
	endTime := startTime.Add(time.Duration(duration) * time.Minute)

	var reminderMinutes *int64
	if parsed.ReminderOffset != "" {
		m := int64(parsed.ReminderOffset.Minutes())
		reminderMinutes = &m
	}

	var recurrence []string
	if draft.RecurrenceRule != "" {
		recurrence = []string{draft.RecurrenceRule}
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      uc.calendarID,
		Summary:         draft.Title,
		Description:     draft.Description,
		Location:        draft.Location,
		StartTime:       startTime,
		EndTime:         endTime,
		Timezone:        uc.timezone,
		Recurrence:      recurrence,
		ReminderMinutes: reminderMinutes,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Schedule: calendar event creation failed for %q (non-fatal): %v", draft.Title, err)
		return ""
	}

	return event.HtmlLink
}
