package notification

import (
	"go.uber.org/zap"
)

// Notifier is the fire-and-forget notification surface. Callers never
// consume a return value; failures to notify must not affect the caller.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier emits notifications to the application log. It stands in for
// the client-facing toast surface.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.Logger.Info("notify", zap.String("kind", "success"), zap.String("message", message))
}

func (n *LogNotifier) Error(message string) {
	n.Logger.Warn("notify", zap.String("kind", "error"), zap.String("message", message))
}
