// Package audit keeps a bounded in-memory trail of recent business events,
// most recent first. It mirrors every entry to the process log; the ring is
// for the operator endpoint, not durable storage.
package audit

import (
	"log"
	"sync"
	"time"
)

// MaxEntries bounds the ring; appending beyond it drops the oldest entry.
const MaxEntries = 50

// Entry is one recorded event.
type Entry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// Log is a fixed-capacity most-recent-first event ring, safe for
// concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// New creates an empty audit log.
func New() *Log {
	return &Log{entries: make([]Entry, 0, MaxEntries)}
}

// Append records an entry at the head of the ring.
func (l *Log) Append(level, message string) {
	log.Printf("[%s] %s", level, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{{Time: time.Now(), Level: level, Message: message}}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
}

// Tail returns up to n entries, most recent first. n <= 0 returns all
// retained entries.
func (l *Log) Tail(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[:n])
	return out
}
