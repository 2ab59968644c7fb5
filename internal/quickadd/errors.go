package quickadd

import "errors"

// Domain-specific errors for the quickadd package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrNothingToSchedule = errors.New("no due date could be derived from input")
)
