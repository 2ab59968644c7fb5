package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-quickadd/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	if got, want := string(b), `"2024-05-01"`; got != want {
		t.Errorf("Date marshaled to %s, want %s", got, want)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, loc)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	// The value's own zone is preserved, not the test runner's.
	if got, want := string(b), `"2024-05-01 15:30:00"`; got != want {
		t.Errorf("DateTime marshaled to %s, want %s", got, want)
	}
}
