package quickadd

import (
	"task-quickadd/internal/model"
	"task-quickadd/pkg/quickparse"
)

// PreviewInput is the input for parsing one quick-add line.
type PreviewInput struct {
	RawText string // Natural language task line from the user
}

// PreviewOutput is the parse preview: the structured record plus the badge
// strings a capture surface would display under the input field.
type PreviewOutput struct {
	Parseable bool
	Parsed    quickparse.ParsedTask
	Badges    []string
}

// DetectInput is the input for the cheap as-you-type probe.
type DetectInput struct {
	RawText string
}

// DetectOutput reports whether the full parse would extract anything.
type DetectOutput struct {
	Parseable bool
}

// ScheduleInput is the input for turning a quick-add line into a task draft.
type ScheduleInput struct {
	RawText         string
	DurationMinutes int // Calendar event length; 0 uses the configured default
}

// ScheduleOutput carries the parse result, the assembled draft and the same
// badge strings Preview would render, so confirmation surfaces can echo what
// was read. The draft's CalendarLink is set when a calendar event was created.
type ScheduleOutput struct {
	Parsed quickparse.ParsedTask
	Draft  model.TaskDraft
	Badges []string
}
