package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/somnolent"
)

// Ensure LoggingPublisher implements somnolent.Publisher.
var _ somnolent.Publisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a Publisher with logging.
type LoggingPublisher struct {
	next   somnolent.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next somnolent.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher and logs the operation.
func (p *LoggingPublisher) Publish(ctx context.Context, text string) (post *somnolent.Post, err error) {
	defer func(begin time.Time) {
		var id string
		if post != nil {
			id = post.ID
		}
		p.logger.Info("publish",
			"id", id,
			"chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Publish(ctx, text)
}
