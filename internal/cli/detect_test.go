package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func runDetectCommand(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runDetect(cmd, args); err != nil {
		t.Fatalf("runDetect returned error: %v", err)
	}
	return buf.String()
}

func TestDetectCmd(t *testing.T) {
	tcs := []struct {
		name      string
		args      []string
		parseable bool
	}{
		{"Relative date", []string{"Call mom tomorrow"}, true},
		{"Tag only", []string{"Buy milk #errands"}, true},
		{"Bare title", []string{"Buy milk"}, false},
		{"Empty text", []string{""}, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := runDetectCommand(t, tc.args...)
			if !strings.Contains(out, "parseable") {
				t.Fatalf("detect printed no verdict: %q", out)
			}
			// "not parseable" contains "parseable", so test the negation.
			if gotNegative := strings.Contains(out, "not parseable"); gotNegative == tc.parseable {
				t.Errorf("detect output = %q, want parseable=%v", out, tc.parseable)
			}
		})
	}
}
