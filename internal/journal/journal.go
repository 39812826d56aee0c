// Package journal records executed commands as an append-only audit trail.
//
// The journal is write-only from the ledger's point of view: nothing is ever
// read back into the store.
package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Entry is one executed command line and its outcome.
type Entry struct {
	Verb      string    `json:"verb"`
	Line      string    `json:"line"`
	Success   bool      `json:"success"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Size      int       `json:"size"`
	History   int       `json:"history"`
	At        time.Time `json:"at"`
}

// Recorder stores journal entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Close() error
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }
func (Nop) Close() error                        { return nil }

// Multi fans an entry out to every recorder concurrently. A failing
// recorder does not stop the others; the first error is returned.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, e Entry) error {
	var g errgroup.Group
	for _, r := range m {
		g.Go(func() error {
			return r.Record(ctx, e)
		})
	}
	return g.Wait()
}

// Close closes every recorder and reports all failures together.
func (m Multi) Close() error {
	var errs []error
	for _, r := range m {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close journal: %v", errs)
	}
	return nil
}

// Memory keeps entries in memory.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

func (m *Memory) Record(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *Memory) Close() error { return nil }

// Entries returns a copy of the recorded entries, oldest first.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}
