// Package quickparse reads one line of natural task-entry text and returns
// the structured task it describes: due date, reminder, recurrence,
// priority, location, tags, folder, description and effort estimate.
//
//	p, _ := quickparse.NewParser("UTC")
//	task := p.Parse("Call mom tomorrow at 5pm #family")
//
// Extraction is rule-based. Each concern owns an ordered table of
// (trigger, interpreter) pairs and the stages run in a fixed order over a
// working copy of the text, removing each recognized phrase as they go.
// What survives every stage becomes the task title.
package quickparse

import (
	"fmt"
	"strings"
	"time"
)

// Parser runs the extraction pipeline. It is stateless apart from the
// timezone dates resolve in, so one instance is safe for concurrent use.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser resolving dates in the given IANA timezone.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves dates in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse reads one line of task text. The reference moment is captured once
// here and threaded through every stage, so a parse straddling midnight
// cannot see two different days.
func (p *Parser) Parse(text string) ParsedTask {
	return p.ParseAt(text, time.Now())
}

// ParseAt is Parse against an explicit reference moment.
func (p *Parser) ParseAt(text string, now time.Time) ParsedTask {
	now = now.In(p.location)
	original := text
	buf := text
	var task ParsedTask

	// Inline markers go first so "~30m" is an effort estimate before any
	// time rule can see it.
	if desc, rest, ok := extractDescription(buf); ok {
		task.Description = desc
		buf = rest
	}
	if hours, matched, ok := extractEffort(buf); ok {
		task.EstimatedHours = hours
		buf = removeSpan(buf, matched)
	}
	if tags, rest, ok := extractTags(buf); ok {
		task.Tags = tags
		buf = rest
	}
	if folder, matched, ok := extractFolder(buf); ok {
		task.FolderName = folder
		buf = removeSpan(buf, matched)
	}

	// The reminder phrase is pulled before date work so its numbers cannot
	// feed the relative-time rules. The offset is held until the due
	// moment is known.
	var pendingReminder ReminderOffset
	reminderFired := false
	if off, matched, ok := extractReminder(buf); ok {
		pendingReminder = off
		reminderFired = true
		buf = removeSpan(buf, matched)
	}

	var due time.Time
	hasDue := false
	hasTime := false

	// Recurrence before dates: "every monday" must win over the bare
	// "monday" date rule, and stripping the phrase here is what enforces
	// that. Advanced forms are tried first so "every 2nd tuesday" is not
	// read as a plain tuesday list.
	if rec, ok := extractAdvancedRecurrence(buf, now); ok {
		task.RepeatType = rec.repeatType
		task.AdvancedRepeat = rec.advanced
		due, hasDue, hasTime = rec.firstDue, true, rec.timed
		buf = removeSpan(buf, rec.matched)
	} else if rec, ok := extractSimpleRecurrence(buf, now); ok {
		task.RepeatType = rec.repeatType
		task.RepeatDays = rec.days
		due, hasDue, hasTime = rec.firstDue, true, rec.timed
		buf = removeSpan(buf, rec.matched)
	}

	relativeFired := false
	if at, timed, matched, ok := extractRelative(buf, now); ok {
		due, hasDue = at, true
		hasTime = hasTime || timed
		relativeFired = true
		buf = removeSpan(buf, matched)
	}
	if !relativeFired {
		if day, matched, ok := extractDate(buf, now); ok {
			due, hasDue = day, true
			buf = removeSpan(buf, matched)
		}
	}

	// Clock times are looked up in the original input, not the buffer: a
	// daypart consumed by "every morning" still has to yield 9:00. The
	// matched span is then re-located in the current buffer, where removal
	// is a no-op when an earlier stage already took it.
	if hour, minute, matched, ok := extractClockTime(original); ok {
		base := now
		if hasDue {
			base = due
		}
		due = atClock(base, hour, minute)
		hasDue = true
		hasTime = true
		buf = removeSpan(buf, matched)
	}

	if hasDue {
		d := due
		task.DueDate = &d
		if reminderFired {
			task.ReminderOffset = pendingReminder
			r := due.Add(-time.Duration(pendingReminder.Minutes()) * time.Minute)
			task.ReminderTime = &r
		} else if hasTime {
			// A task with a clock time gets a reminder at that moment.
			task.ReminderOffset = ReminderExact
			r := due
			task.ReminderTime = &r
		}
	}

	if level, matched, ok := extractPriority(buf); ok {
		task.Priority = level
		buf = removeSpan(buf, matched)
	}
	if location, matched, ok := extractLocation(buf); ok {
		task.Location = location
		buf = removeSpan(buf, matched)
	}

	task.Text = canonicalTitle(buf, original)
	return task
}

// removeSpan blanks the first occurrence of span in buf, keeping the words
// around it apart. The span is looked up fresh each time, so offsets from a
// buffer that earlier stages have already reshaped are never trusted.
func removeSpan(buf, span string) string {
	if span == "" {
		return buf
	}
	i := strings.Index(buf, span)
	if i < 0 {
		return buf
	}
	return buf[:i] + " " + buf[i+len(span):]
}
