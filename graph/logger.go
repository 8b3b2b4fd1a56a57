package graph

import "log"

// Logger is the engine's sole logging collaborator (spec.md §1 keeps
// logging transport external). Per-file failures and ranker downgrades are
// reported through it rather than through a concrete logging dependency.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// NopLogger discards everything. The zero value is ready to use.
type NopLogger struct{}

func (NopLogger) Warnf(string, ...interface{}) {}

// StdLogger adapts the standard library's log package for callers that want
// console output without adopting a logging framework.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger returns a logger writing to the standard logger's output
// (log.Writer()) with a "codegraph: " prefix.
func NewStdLogger() *StdLogger {
	return &StdLogger{Logger: log.New(log.Writer(), "codegraph: ", log.LstdFlags)}
}

func (s *StdLogger) Warnf(format string, args ...interface{}) {
	s.Printf(format, args...)
}
