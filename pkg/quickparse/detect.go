package quickparse

import "regexp"

// detectPatterns is every trigger the pipeline knows, flattened. The probe
// only answers "would any stage react", so interpreters are not consulted
// and table order does not matter here.
var detectPatterns = buildDetectPatterns()

func buildDetectPatterns() []*regexp.Regexp {
	patterns := []*regexp.Regexp{
		quotedTagPattern,
		bareTagPattern,
		quotedFolderPattern,
		bareFolderPattern,
	}
	for _, delim := range descriptionDelims {
		patterns = append(patterns, regexp.MustCompile(regexp.QuoteMeta(delim)))
	}
	for _, r := range effortRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range reminderRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range advancedRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range simpleRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range relativeRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range dateRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range timeRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range priorityRules {
		patterns = append(patterns, r.pattern)
	}
	for _, r := range locationRules {
		patterns = append(patterns, r.pattern)
	}
	return patterns
}

// LooksParseable reports whether the text contains anything the parser
// would react to, sharing the exact compiled triggers the stages run. It
// never mutates and is cheap enough to call per keystroke. A trigger whose
// interpreter would later reject its match (a "27:80" clock) can still
// answer true; the guarantee runs the other way: false means a full parse
// extracts nothing.
func LooksParseable(text string) bool {
	for _, p := range detectPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
