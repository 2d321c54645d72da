package repositories

import (
	"fmt"
	"log/slog"
	"strings"
)

// BadgerLogger redirects badger's own logs into the application logger,
// tagged so they can be told apart from the forum's.
type BadgerLogger struct {
	logger *slog.Logger
}

func NewBadgerLogger(log *slog.Logger) *BadgerLogger {
	return &BadgerLogger{logger: log.With("component", "badger")}
}

// badger terminates most lines with a newline.
func clean(format string, args ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

func (l *BadgerLogger) Errorf(format string, args ...any)   { l.logger.Error(clean(format, args...)) }
func (l *BadgerLogger) Warningf(format string, args ...any) { l.logger.Warn(clean(format, args...)) }
func (l *BadgerLogger) Infof(format string, args ...any)    { l.logger.Info(clean(format, args...)) }
func (l *BadgerLogger) Debugf(format string, args ...any)   { l.logger.Debug(clean(format, args...)) }
