package simulator

import "log/slog"

// LoggingObserver logs every lifecycle event using structured logging.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer on the default logger.
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{logger: slog.Default()}
}

// OnEvent implements the Observer interface.
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("query_lifecycle",
		"event", event.Type,
		"session_id", event.SessionID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
