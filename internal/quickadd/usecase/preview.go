package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-quickadd/internal/model"
	"task-quickadd/internal/quickadd"
	"task-quickadd/pkg/quickparse"
)

// Preview parses one quick-add line and renders its display badges. The
// result is memoized per minute bucket.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input quickadd.PreviewInput) (quickadd.PreviewOutput, error) {
	text := strings.TrimSpace(input.RawText)
	if text == "" {
		return quickadd.PreviewOutput{}, quickadd.ErrEmptyInput
	}

	now := time.Now().In(uc.parser.Location())
	key := previewKey(text, now)

	if uc.previewCache != nil {
		if out, ok := uc.previewCache.Get(key); ok {
			uc.l.Debugf(ctx, "Preview: cache hit user=%s", sc.UserID)
			return out, nil
		}
	}

	parsed := uc.parser.ParseAt(text, now)

	out := quickadd.PreviewOutput{
		Parseable: quickparse.LooksParseable(text),
		Parsed:    parsed,
		Badges:    quickparse.FormatForDisplayAt(parsed, now),
	}

	if uc.previewCache != nil {
		uc.previewCache.Add(key, out)
	}

	uc.l.Infof(ctx, "Preview: user=%s parseable=%t badges=%d", sc.UserID, out.Parseable, len(out.Badges))
	return out, nil
}

// Detect runs the pattern probe only. Empty input is simply not parseable,
// not an error: the probe runs on every keystroke.
func (uc *implUseCase) Detect(ctx context.Context, sc model.Scope, input quickadd.DetectInput) (quickadd.DetectOutput, error) {
	return quickadd.DetectOutput{
		Parseable: quickparse.LooksParseable(input.RawText),
	}, nil
}

// previewKey scopes a cache entry to the minute it was computed in, so
// "tomorrow" can never be served across a midnight boundary.
func previewKey(text string, now time.Time) string {
	return fmt.Sprintf("%s|%d", text, now.Unix()/60)
}
