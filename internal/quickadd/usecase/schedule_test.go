package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"task-quickadd/internal/model"
	"task-quickadd/internal/quickadd"
)

func TestSchedule(t *testing.T) {
	sc := model.Scope{UserID: "telegram_42"}

	t.Run("Empty Input Error", func(t *testing.T) {
		uc := newTestUseCase(t, &mockLogger{}, nil, 0)
		_, err := uc.Schedule(context.Background(), sc, quickadd.ScheduleInput{RawText: ""})
		if !errors.Is(err, quickadd.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("No Due Date Error", func(t *testing.T) {
		uc := newTestUseCase(t, &mockLogger{}, nil, 0)
		_, err := uc.Schedule(context.Background(), sc, quickadd.ScheduleInput{RawText: "Buy milk #errands"})
		if !errors.Is(err, quickadd.ErrNothingToSchedule) {
			t.Errorf("expected ErrNothingToSchedule, got %v", err)
		}
	})

	t.Run("Assembles Draft And Pushes Event", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := newTestUseCase(t, &mockLogger{}, cal, 0)

		out, err := uc.Schedule(context.Background(), sc, quickadd.ScheduleInput{
			RawText: "Dentist tomorrow at 3pm at the dentist remind me 30 min before ~1h",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		draft := out.Draft
		if _, err := uuid.Parse(draft.ID); err != nil {
			t.Errorf("draft id %q is not a UUID: %v", draft.ID, err)
		}
		if draft.Title != "Dentist" {
			t.Errorf("Title = %q, want Dentist", draft.Title)
		}
		if draft.CreatedBy != "telegram_42" {
			t.Errorf("CreatedBy = %q", draft.CreatedBy)
		}
		if draft.Location != "dentist" {
			t.Errorf("Location = %q, want dentist", draft.Location)
		}
		if draft.ReminderOffset != "30min" {
			t.Errorf("ReminderOffset = %q, want 30min", draft.ReminderOffset)
		}
		if draft.CalendarLink != "http://cal.link" {
			t.Errorf("CalendarLink = %q", draft.CalendarLink)
		}

		if cal.lastReq == nil {
			t.Fatal("expected a calendar request")
		}
		if cal.lastReq.Summary != "Dentist" {
			t.Errorf("event summary = %q", cal.lastReq.Summary)
		}
		if cal.lastReq.ReminderMinutes == nil || *cal.lastReq.ReminderMinutes != 30 {
			t.Errorf("event reminder = %v, want 30", cal.lastReq.ReminderMinutes)
		}
		// The ~1h estimate sets the event length.
		if got := cal.lastReq.EndTime.Sub(cal.lastReq.StartTime); got != time.Hour {
			t.Errorf("event length = %v, want 1h", got)
		}
		if len(cal.lastReq.Recurrence) != 0 {
			t.Errorf("one-off task must not carry recurrence: %v", cal.lastReq.Recurrence)
		}
	})

	t.Run("Explicit Duration Beats Estimate", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := newTestUseCase(t, &mockLogger{}, cal, 0)

		_, err := uc.Schedule(context.Background(), sc, quickadd.ScheduleInput{
			RawText:         "Dentist tomorrow at 3pm ~1h",
			DurationMinutes: 90,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cal.lastReq.EndTime.Sub(cal.lastReq.StartTime); got != 90*time.Minute {
			t.Errorf("event length = %v, want 90m", got)
		}
	})

	t.Run("Calendar Failure Degrades", func(t *testing.T) {
		cal := &mockCalendarClient{fail: true}
		uc := newTestUseCase(t, &mockLogger{}, cal, 0)

		out, err := uc.Schedule(context.Background(), sc, quickadd.ScheduleInput{
			RawText: "Call mom tomorrow at 5pm",
		})
		if err != nil {
			t.Fatalf("calendar failure must not fail scheduling: %v", err)
		}
		if out.Draft.CalendarLink != "" {
			t.Errorf("expected empty CalendarLink, got %q", out.Draft.CalendarLink)
		}
	})

	t.Run("No Calendar Client Skips Push", func(t *testing.T) {
		uc := newTestUseCase(t, &mockLogger{}, nil, 0)

		out, err := uc.Schedule(context.Background(), sc, quickadd.ScheduleInput{
			RawText: "Call mom tomorrow at 5pm",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Draft.CalendarLink != "" {
			t.Errorf("expected empty CalendarLink, got %q", out.Draft.CalendarLink)
		}
		if out.Draft.DueDate == nil {
			t.Error("expected a due date on the draft")
		}
	})
}

func TestScheduleRecurrenceRules(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "weekdays",
			input: "Standup every weekday",
			want:  "RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
		},
		{
			name:  "weekends",
			input: "Hike every weekend",
			want:  "RRULE:FREQ=WEEKLY;BYDAY=SA,SU",
		},
		{
			name:  "weekday list",
			input: "Gym every mon and wed",
			want:  "RRULE:FREQ=WEEKLY;BYDAY=MO,WE",
		},
		{
			name:  "ordinal weekday",
			input: "Report every 2nd tuesday",
			want:  "RRULE:FREQ=MONTHLY;BYDAY=2TU",
		},
		{
			name:  "last weekday",
			input: "Retro every last friday",
			want:  "RRULE:FREQ=MONTHLY;BYDAY=-1FR",
		},
		{
			name:  "interval days",
			input: "Water plants every 3 days",
			want:  "RRULE:FREQ=DAILY;INTERVAL=3",
		},
		{
			name:  "every other month",
			input: "Backup every other month",
			want:  "RRULE:FREQ=MONTHLY;INTERVAL=2",
		},
		{
			name:  "hourly interval",
			input: "Hydrate every 6 hours",
			want:  "RRULE:FREQ=HOURLY;INTERVAL=6",
		},
		{
			name:  "plain weekly",
			input: "Review goals every week",
			want:  "RRULE:FREQ=WEEKLY",
		},
		{
			name:  "plain daily",
			input: "Take pills every day at 8am",
			want:  "RRULE:FREQ=DAILY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(t, &mockLogger{}, nil, 0)
			out, err := uc.Schedule(context.Background(), sc, quickadd.ScheduleInput{RawText: tc.input})
			if err != nil {
				t.Fatalf("Schedule(%q) error = %v", tc.input, err)
			}
			if out.Draft.RecurrenceRule != tc.want {
				t.Errorf("RecurrenceRule = %q, want %q", out.Draft.RecurrenceRule, tc.want)
			}
		})
	}
}
