// Package watch re-evaluates a scenario file whenever its content changes.
package watch

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/scenario"
)

// Sink receives the evaluated scenarios after each change.
type Sink func(results []scenario.Result)

// Watcher polls a scenario file on a fixed interval.
type Watcher struct {
	path     string
	interval time.Duration
	sink     Sink
	logger   *log.Logger
	clock    quartz.Clock

	seen    []byte
	readErr string
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithClock sets the clock driving the poll ticker and report timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(w *Watcher) { w.clock = clock }
}

// New creates a watcher for path.
func New(path string, interval time.Duration, sink Sink, logger *log.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		interval: interval,
		sink:     sink,
		logger:   logger.WithPrefix("watch").With("file", path),
		clock:    quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls until ctx is cancelled. The file is checked once immediately.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.interval, "watch")
	defer ticker.Stop()

	w.logger.Info("Watching scenario file", "interval", w.interval)
	w.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// poll reloads the file if its content differs from the last one seen.
// Content that fails to parse is still remembered, so a broken file is
// reported once rather than on every tick.
func (w *Watcher) poll(ctx context.Context) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if err.Error() != w.readErr {
			w.logger.Warn("Failed to read scenario file", "error", err)
			w.readErr = err.Error()
		}
		return
	}
	w.readErr = ""

	if w.seen != nil && bytes.Equal(data, w.seen) {
		return
	}
	w.seen = data

	scenarios, err := scenario.Parse(data, w.path)
	if err != nil {
		w.logger.Error("Failed to load scenarios", "error", err)
		return
	}

	results, err := scenario.RunAll(ctx, w.logger, scenarios, advisor.WithClock(w.clock))
	if err != nil {
		w.logger.Error("Failed to evaluate scenarios", "error", err)
		return
	}

	w.logger.Debug("Scenarios evaluated", "count", len(results))
	w.sink(results)
}
