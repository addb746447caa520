package logger

import (
	"log/slog"
	"time"
)

// Op logs a named operation with its duration. It is an explicit value
// passed where needed, not a package-level singleton.
type Op struct {
	log   *slog.Logger
	name  string
	start time.Time
	attrs []any
}

func StartOp(log *slog.Logger, name string, attrs ...any) *Op {
	op := &Op{log: log, name: name, start: time.Now(), attrs: attrs}
	log.Debug("operation started", append([]any{"op", name}, attrs...)...)
	return op
}

func (o *Op) Success(msg string) {
	o.log.Info(msg, append([]any{"op", o.name, "duration", time.Since(o.start)}, o.attrs...)...)
}

func (o *Op) Fail(msg string, err error) {
	o.log.Error(msg, append([]any{"op", o.name, "duration", time.Since(o.start), "err", err}, o.attrs...)...)
}
