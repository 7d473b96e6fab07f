package logger

import (
	"go.uber.org/zap/zapcore"
)

// Field keys copied out of log entries into the persisted context.
var contextKeys = map[string]bool{
	"ci":           true,
	"lider_ci":     true,
	"offer_id":     true,
	"report_id":    true,
	"element_id":   true,
	"ip":           true,
	"operation":    true,
	"fecha_inicio": true,
	"fecha_fin":    true,
}

// LogSink receives entries captured by DBCore.
type LogSink interface {
	AddLog(entry LogEntry)
}

// DBCore wraps a zapcore.Core and forwards every written entry to a LogSink.
type DBCore struct {
	zapcore.Core
	sink   LogSink
	fields []zapcore.Field
}

func NewDBCore(baseCore zapcore.Core, sink LogSink) zapcore.Core {
	return &DBCore{
		Core: baseCore,
		sink: sink,
	}
}

// With keeps the DB sink on child loggers created with logger.With.
func (c *DBCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &DBCore{
		Core:   c.Core.With(fields),
		sink:   c.sink,
		fields: merged,
	}
}

func (c *DBCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *DBCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var requestID string
	ctx := make(map[string]string)
	for key, value := range enc.Fields {
		s, ok := value.(string)
		if !ok {
			continue
		}
		switch {
		case key == "request_id":
			requestID = s
		case contextKeys[key]:
			ctx[key] = s
		}
	}

	c.sink.AddLog(LogEntry{
		Level:     entry.Level,
		Message:   entry.Message,
		Caller:    entry.Caller.Function,
		RequestID: requestID,
		Context:   ctx,
	})

	// the wrapped core still prints to the console
	return c.Core.Write(entry, fields)
}
