package events

import (
	"context"

	"go.uber.org/zap"
)

// LogHandler writes every event it receives to the logger at debug level
type LogHandler struct {
	log *zap.Logger
}

func NewLogHandler(log *zap.Logger) *LogHandler {
	return &LogHandler{log: log}
}

func (h *LogHandler) Handle(_ context.Context, event Event) error {
	h.log.Debug("event",
		zap.String("type", event.Type()),
		zap.String("stream", event.StreamID()),
		zap.Int("version", event.Version()),
		zap.Any("data", event.Data()),
	)
	return nil
}

func (h *LogHandler) CanHandle(string) bool {
	return true
}
