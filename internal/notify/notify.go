// Package notify carries transient user-facing notifications out of the
// list manager. Screens decide how to render them; the manager only
// decides when one fires.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Notifier receives the outcome of a user action.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(msg string) { n.logger.Info(msg) }
func (n *LogNotifier) Warning(msg string) { n.logger.Warn(msg) }
func (n *LogNotifier) Error(msg string)   { n.logger.Error(msg) }

// WriterNotifier prints notifications for an interactive console session.
type WriterNotifier struct {
	out io.Writer
}

// NewWriterNotifier creates a notifier that prints to out.
func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

func (n *WriterNotifier) Success(msg string) { fmt.Fprintf(n.out, "ok: %s\n", msg) }
func (n *WriterNotifier) Warning(msg string) { fmt.Fprintf(n.out, "warning: %s\n", msg) }
func (n *WriterNotifier) Error(msg string)   { fmt.Fprintf(n.out, "error: %s\n", msg) }

// Entry is one recorded notification.
type Entry struct {
	Level   string
	Message string
}

// Recorder captures notifications for inspection in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Success(msg string) { r.record("success", msg) }
func (r *Recorder) Warning(msg string) { r.record("warning", msg) }
func (r *Recorder) Error(msg string)   { r.record("error", msg) }

func (r *Recorder) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset clears all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*WriterNotifier)(nil)
	_ Notifier = (*Recorder)(nil)
)
