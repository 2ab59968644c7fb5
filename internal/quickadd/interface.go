package quickadd

import (
	"context"

	"task-quickadd/internal/model"
)

// UseCase defines the business logic interface for the quick-add domain.
type UseCase interface {
	// Preview parses one quick-add line without side effects.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)

	// Detect runs the cheap pattern probe used by as-you-type capture
	// surfaces. It never extracts anything.
	Detect(ctx context.Context, sc model.Scope, input DetectInput) (DetectOutput, error)

	// Schedule parses one line, assembles a task draft and pushes a Google
	// Calendar event when a client is configured.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
}
