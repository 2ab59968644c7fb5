package http

import (
	"time"

	"task-quickadd/internal/model"
	"task-quickadd/internal/quickadd"
	"task-quickadd/pkg/quickparse"
	"task-quickadd/pkg/response"
)

// --- Request DTOs ---

type previewReq struct {
	Text string `json:"text" binding:"required"`
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput() quickadd.PreviewInput {
	return quickadd.PreviewInput{RawText: r.Text}
}

// ---

// detectReq deliberately has no required binding: the probe runs on every
// keystroke and an empty buffer is a valid question with answer "no".
type detectReq struct {
	Text string `json:"text"`
}

func (r detectReq) validate() error { return nil }

func (r detectReq) toInput() quickadd.DetectInput {
	return quickadd.DetectInput{RawText: r.Text}
}

// ---

type scheduleReq struct {
	Text            string `json:"text"             binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
}

func (r scheduleReq) validate() error { return nil }

func (r scheduleReq) toInput() quickadd.ScheduleInput {
	return quickadd.ScheduleInput{
		RawText:         r.Text,
		DurationMinutes: r.DurationMinutes,
	}
}

// --- Response DTOs ---

type advancedRepeatResp struct {
	Frequency   string `json:"frequency"`
	Interval    int    `json:"interval"`
	MonthlyType string `json:"monthly_type"`
	MonthlyWeek int    `json:"monthly_week"`
	MonthlyDay  int    `json:"monthly_day"`
}

// parsedResp flattens quickparse.ParsedTask for the API. Due and reminder
// moments are rendered in the service timezone via response.DateTime.
type parsedResp struct {
	Text           string              `json:"text"`
	DueDate        *response.DateTime  `json:"due_date"`
	ReminderTime   *response.DateTime  `json:"reminder_time"`
	ReminderOffset string              `json:"reminder_offset"`
	Priority       string              `json:"priority"`
	RepeatType     string              `json:"repeat_type"`
	RepeatDays     []int               `json:"repeat_days"`
	AdvancedRepeat *advancedRepeatResp `json:"advanced_repeat,omitempty"`
	Location       string              `json:"location"`
	Tags           []string            `json:"tags"`
	FolderName     string              `json:"folder_name"`
	Description    string              `json:"description"`
	EstimatedHours float64             `json:"estimated_hours"`
}

func newParsedResp(p quickparse.ParsedTask) parsedResp {
	resp := parsedResp{
		Text:           p.Text,
		DueDate:        (*response.DateTime)(p.DueDate),
		ReminderTime:   (*response.DateTime)(p.ReminderTime),
		ReminderOffset: string(p.ReminderOffset),
		Priority:       string(p.Priority),
		RepeatType:     string(p.RepeatType),
		RepeatDays:     p.RepeatDays,
		Location:       p.Location,
		Tags:           p.Tags,
		FolderName:     p.FolderName,
		Description:    p.Description,
		EstimatedHours: p.EstimatedHours,
	}
	if a := p.AdvancedRepeat; a != nil {
		resp.AdvancedRepeat = &advancedRepeatResp{
			Frequency:   string(a.Frequency),
			Interval:    a.Interval,
			MonthlyType: string(a.MonthlyType),
			MonthlyWeek: a.MonthlyWeek,
			MonthlyDay:  a.MonthlyDay,
		}
	}
	return resp
}

type previewResp struct {
	Parseable bool       `json:"parseable"`
	Parsed    parsedResp `json:"parsed"`
	Badges    []string   `json:"badges"`
}

func (h *handler) newPreviewResp(out quickadd.PreviewOutput) previewResp {
	return previewResp{
		Parseable: out.Parseable,
		Parsed:    newParsedResp(out.Parsed),
		Badges:    out.Badges,
	}
}

type detectResp struct {
	Parseable bool `json:"parseable"`
}

func (h *handler) newDetectResp(out quickadd.DetectOutput) detectResp {
	return detectResp{Parseable: out.Parseable}
}

type draftResp struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	RawText        string             `json:"raw_text"`
	DueDate        *response.DateTime `json:"due_date"`
	ReminderTime   *response.DateTime `json:"reminder_time"`
	ReminderOffset string             `json:"reminder_offset"`
	Priority       string             `json:"priority"`
	RepeatType     string             `json:"repeat_type"`
	RepeatDays     []int              `json:"repeat_days"`
	RecurrenceRule string             `json:"recurrence_rule"`
	Location       string             `json:"location"`
	Tags           []string           `json:"tags"`
	FolderName     string             `json:"folder_name"`
	Description    string             `json:"description"`
	EstimatedHours float64            `json:"estimated_hours"`
	CalendarLink   string             `json:"calendar_link"`
	CreatedBy      string             `json:"created_by"`
	CreatedAt      time.Time          `json:"created_at"`
}

func newDraftResp(d model.TaskDraft) draftResp {
	return draftResp{
		ID:             d.ID,
		Title:          d.Title,
		RawText:        d.RawText,
		DueDate:        (*response.DateTime)(d.DueDate),
		ReminderTime:   (*response.DateTime)(d.ReminderTime),
		ReminderOffset: d.ReminderOffset,
		Priority:       d.Priority,
		RepeatType:     d.RepeatType,
		RepeatDays:     d.RepeatDays,
		RecurrenceRule: d.RecurrenceRule,
		Location:       d.Location,
		Tags:           d.Tags,
		FolderName:     d.FolderName,
		Description:    d.Description,
		EstimatedHours: d.EstimatedHours,
		CalendarLink:   d.CalendarLink,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
	}
}

type scheduleResp struct {
	Parsed parsedResp `json:"parsed"`
	Draft  draftResp  `json:"draft"`
	Badges []string   `json:"badges"`
}

func (h *handler) newScheduleResp(out quickadd.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Parsed: newParsedResp(out.Parsed),
		Draft:  newDraftResp(out.Draft),
		Badges: out.Badges,
	}
}
