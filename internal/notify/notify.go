// Package notify provides NotificationSink implementations. The contract is
// two short messages per event — a title and a detail — rendered however the
// sink sees fit.
package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// LogSink renders notifications as structured log lines, the console
// equivalent of transient toasts.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "notify").Logger()}
}

func (s *LogSink) Success(title, detail string) {
	s.log.Info().Str("detail", detail).Msg(title)
}

func (s *LogSink) Error(title, detail string) {
	s.log.Error().Str("detail", detail).Msg(title)
}

// Entry is one captured notification.
type Entry struct {
	Level  string // "success" or "error"
	Title  string
	Detail string
}

// Capture records notifications for assertions in tests.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

func NewCapture() *Capture { return &Capture{} }

func (c *Capture) Success(title, detail string) { c.add("success", title, detail) }
func (c *Capture) Error(title, detail string)   { c.add("error", title, detail) }

func (c *Capture) add(level, title, detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Level: level, Title: title, Detail: detail})
}

// Entries returns a copy of everything captured so far.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Last returns the most recent entry, or a zero Entry when nothing was
// captured.
func (c *Capture) Last() Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		return Entry{}
	}
	return c.entries[len(c.entries)-1]
}
