package quickparse

import (
	"regexp"
	"strings"
)

// connectives are trimmed from the ends of the title when a removed phrase
// leaves one dangling: "Call mom at" once "5pm" is gone.
var connectives = map[string]bool{
	"at":    true,
	"on":    true,
	"by":    true,
	"in":    true,
	"every": true,
	"due":   true,
	"for":   true,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// canonicalTitle collapses what extraction left in the buffer into a
// display title. This is cosmetic cleanup only, never re-parsing: runs of
// whitespace fold to one space and dangling connectives come off both ends
// until none remain. An input that was nothing but extracted phrases falls
// back to the trimmed original, so the title is never empty for non-blank
// input.
func canonicalTitle(buf, original string) string {
	s := strings.TrimSpace(whitespaceRun.ReplaceAllString(buf, " "))
	s = strings.TrimSpace(strings.Trim(s, ",;"))
	for {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			break
		}
		trimmed := false
		if connectives[strings.ToLower(fields[0])] {
			fields = fields[1:]
			trimmed = true
		}
		if n := len(fields); n > 0 && connectives[strings.ToLower(fields[n-1])] {
			fields = fields[:n-1]
			trimmed = true
		}
		s = strings.Join(fields, " ")
		if !trimmed {
			break
		}
	}
	s = strings.TrimSpace(strings.Trim(s, ",;"))
	if s == "" {
		return strings.TrimSpace(original)
	}
	return s
}
