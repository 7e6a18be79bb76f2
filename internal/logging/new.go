package logging

import (
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger for the given backend writing to w. The returned
// function flushes the logger and should be deferred by the caller.
func New(backend, level, format string, w io.Writer) (Logger, func(), error) {
	switch backend {
	case "", BackendSlog:
		return NewSlogLogger(slog.New(NewSlogHandler(w, level, format))), func() {}, nil
	case BackendZap:
		zl := NewZapLogger(zap.New(NewZapCore(w, level, format)))
		return zl, func() { _ = zl.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
