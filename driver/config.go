package driver

import (
	"log"
	"os"
)

// Config carries every run parameter of §6, as a flat struct built once by
// the caller and passed to New. No package reads environment variables or
// global state directly.
type Config struct {
	Seed uint64

	Steps int
	NT    int

	T string // schedule string driving temperature
	H string // schedule string driving Gamma

	Remap    string // "{sorted|encounter},{fill,<start>|no_fill}", default "sorted,fill,0"
	Periodic bool
	FirstIn  bool
}

// Logger receives non-fatal warnings emitted during ingestion and init.
type Logger interface {
	Warnf(format string, args ...any)
}

// stderrLogger is the default Logger, writing through the standard log
// package to os.Stderr.
type stderrLogger struct {
	l *log.Logger
}

func newStderrLogger() *stderrLogger {
	return &stderrLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s *stderrLogger) Warnf(format string, args ...any) {
	s.l.Printf(format, args...)
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithLogger overrides the default os.Stderr logger.
func WithLogger(l Logger) Option {
	return func(d *Driver) { d.logger = l }
}
