package coresched

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Option configures ambient, non-semantic engine behavior: where debug
// output goes and how much of it is logged. No Option ever changes what an
// operation returns.
type Option func(*Engine)

// WithLogger installs a logrus logger the engine uses for Debug-level
// tracing of dispatch, preemption, completion, and quantum rotation. The
// zero-value Engine uses a logger with output discarded, so tracing is
// opt-in.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithWriter sets the io.Writer ShowQueue renders its table to. Defaults to
// os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

func defaultLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func defaultWriter() io.Writer {
	return os.Stdout
}
