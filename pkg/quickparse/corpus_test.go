package quickparse_test

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"task-quickadd/pkg/quickparse"
)

// corpusCase mirrors one entry in testdata/cases.yaml. An unset field
// asserts the parser extracted nothing for it.
type corpusCase struct {
	Name           string     `yaml:"name"`
	Input          string     `yaml:"input"`
	Text           string     `yaml:"text"`
	Due            *time.Time `yaml:"due"`
	ReminderOffset string     `yaml:"reminder_offset"`
	ReminderTime   *time.Time `yaml:"reminder_time"`
	Priority       string     `yaml:"priority"`
	RepeatType     string     `yaml:"repeat_type"`
	RepeatDays     []int      `yaml:"repeat_days"`
	Location       string     `yaml:"location"`
	Tags           []string   `yaml:"tags"`
	Folder         string     `yaml:"folder"`
	Description    string     `yaml:"description"`
	Hours          float64    `yaml:"hours"`
}

func TestCorpus(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	if err != nil {
		t.Fatalf("reading corpus: %v", err)
	}
	var cases []corpusCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("decoding corpus: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("empty corpus")
	}

	parser := newTestParser(t)
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			got := parser.ParseAt(c.Input, testNow)

			if got.Text != c.Text {
				t.Errorf("text = %q, want %q", got.Text, c.Text)
			}
			checkTime(t, "due", got.DueDate, c.Due)
			checkTime(t, "reminder_time", got.ReminderTime, c.ReminderTime)
			if string(got.ReminderOffset) != c.ReminderOffset {
				t.Errorf("reminder_offset = %q, want %q", got.ReminderOffset, c.ReminderOffset)
			}
			if string(got.Priority) != c.Priority {
				t.Errorf("priority = %q, want %q", got.Priority, c.Priority)
			}
			if string(got.RepeatType) != c.RepeatType {
				t.Errorf("repeat_type = %q, want %q", got.RepeatType, c.RepeatType)
			}
			if !reflect.DeepEqual(got.RepeatDays, c.RepeatDays) {
				t.Errorf("repeat_days = %v, want %v", got.RepeatDays, c.RepeatDays)
			}
			if got.Location != c.Location {
				t.Errorf("location = %q, want %q", got.Location, c.Location)
			}
			if !reflect.DeepEqual(got.Tags, c.Tags) {
				t.Errorf("tags = %v, want %v", got.Tags, c.Tags)
			}
			if got.FolderName != c.Folder {
				t.Errorf("folder = %q, want %q", got.FolderName, c.Folder)
			}
			if got.Description != c.Description {
				t.Errorf("description = %q, want %q", got.Description, c.Description)
			}
			if math.Abs(got.EstimatedHours-c.Hours) > 1e-9 {
				t.Errorf("hours = %v, want %v", got.EstimatedHours, c.Hours)
			}

			// The probe promise: a miss means the full parse extracted
			// nothing at all.
			if !quickparse.LooksParseable(c.Input) && !parsedNothing(got, c.Input) {
				t.Errorf("LooksParseable(%q) = false but fields were extracted", c.Input)
			}
		})
	}
}

func checkTime(t *testing.T, field string, got, want *time.Time) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s = %v, want %v", field, got, want)
		return
	}
	if want != nil && !got.Equal(*want) {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}
