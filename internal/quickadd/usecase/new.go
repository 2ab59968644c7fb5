package usecase

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"task-quickadd/internal/quickadd"
	"task-quickadd/pkg/gcalendar"
	pkgLog "task-quickadd/pkg/log"
	"task-quickadd/pkg/quickparse"
)

// CalendarClient is what Schedule needs from pkg/gcalendar.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	parser   *quickparse.Parser
	calendar CalendarClient

	calendarID         string
	timezone           string
	defaultDurationMin int

	// previewCache memoizes Preview outputs. Entries are keyed by input text
	// plus the minute bucket, because parse output depends on the clock.
	previewCache *lru.Cache[string, quickadd.PreviewOutput]
}

// New creates a new quickadd UseCase instance. The calendar client may be
// nil; scheduling then skips the event push. A cacheSize of zero disables
// the preview cache.
func New(
	l pkgLog.Logger,
	parser *quickparse.Parser,
	calendar CalendarClient,
	calendarID string,
	timezone string,
	defaultDurationMin int,
	cacheSize int,
) *implUseCase {
	var cache *lru.Cache[string, quickadd.PreviewOutput]
	if cacheSize > 0 {
		cache, _ = lru.New[string, quickadd.PreviewOutput](cacheSize)
	}

	return &implUseCase{
		l:                  l,
		parser:             parser,
		calendar:           calendar,
		calendarID:         calendarID,
		timezone:           timezone,
		defaultDurationMin: defaultDurationMin,
		previewCache:       cache,
	}
}
