package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/somnolent"
)

// Ensure LoggingStoryService implements somnolent.StoryService.
var _ somnolent.StoryService = (*LoggingStoryService)(nil)

// LoggingStoryService wraps a StoryService with logging.
type LoggingStoryService struct {
	next   somnolent.StoryService
	logger *slog.Logger
}

// NewLoggingStoryService creates a new LoggingStoryService.
func NewLoggingStoryService(next somnolent.StoryService, logger *slog.Logger) *LoggingStoryService {
	return &LoggingStoryService{next: next, logger: logger}
}

// RandomExcerpt delegates to the wrapped service and logs the excerpt drawn.
func (s *LoggingStoryService) RandomExcerpt(ctx context.Context) (excerpt *somnolent.Excerpt, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if excerpt != nil {
			attrs = append(attrs, "story", excerpt.StoryID, "url", excerpt.URL, "title", excerpt.Title)
		}
		s.logger.Info("random excerpt", attrs...)
	}(time.Now())
	return s.next.RandomExcerpt(ctx)
}
