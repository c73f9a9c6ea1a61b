package txn

import "go.uber.org/zap"

// Field is one piece of structured context attached to a logged event.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger receives one event per manager operation that changes the commit
// tree (begin, end, modify, undo, redo). Implementations must be safe to
// call synchronously from the operation itself; the manager carries no
// concurrency of its own, so no locking is done on its behalf.
type Logger interface {
	Event(event string, fields ...Field)
}

// NopLogger discards every event. It is the Manager's default Logger so
// that logging is opt-in.
type NopLogger struct{}

// Event implements Logger.
func (NopLogger) Event(string, ...Field) {}

// ZapLogger adapts a *zap.Logger to Logger, logging every event at debug
// level — manager traffic is diagnostic noise, not an operational signal.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger wraps an existing *zap.Logger.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

// Event implements Logger.
func (z *ZapLogger) Event(event string, fields ...Field) {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zf = append(zf, zap.Any(f.Key, f.Value))
	}
	z.log.Debug(event, zf...)
}
