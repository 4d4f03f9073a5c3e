package webinar

import (
	"context"
	"fmt"
	"log/slog"
)

// DetailsViewer is invoked when a visitor asks for a webinar's details.
type DetailsViewer interface {
	ViewDetails(ctx context.Context, id int)
}

// LogDetailsViewer records the request as a single diagnostic log line.
// It has no other side effects.
type LogDetailsViewer struct {
	Logger *slog.Logger
}

// NewLogDetailsViewer returns a viewer writing to logger, or slog.Default()
// when logger is nil.
func NewLogDetailsViewer(logger *slog.Logger) *LogDetailsViewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDetailsViewer{Logger: logger}
}

func (v *LogDetailsViewer) ViewDetails(ctx context.Context, id int) {
	v.Logger.InfoContext(ctx, fmt.Sprintf("Viewing details for webinar ID: %d", id), "webinar_id", id)
}
