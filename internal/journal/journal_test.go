package journal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type failing struct {
	closeErr error
	closed   bool
}

func (f *failing) Record(context.Context, Entry) error { return errors.New("sink down") }
func (f *failing) Close() error {
	f.closed = true
	return f.closeErr
}

func TestMultiRecordsToAll(t *testing.T) {
	a, b := &Memory{}, &Memory{}
	m := Multi{a, b}
	if err := m.Record(context.Background(), Entry{Verb: "undo"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(a.Entries()) != 1 || len(b.Entries()) != 1 {
		t.Fatalf("expected entry in both sinks")
	}
}

func TestMultiReportsFailure(t *testing.T) {
	mem := &Memory{}
	m := Multi{mem, &failing{}}
	if err := m.Record(context.Background(), Entry{Verb: "add"}); err == nil {
		t.Fatalf("expected error from failing sink")
	}
}

// slowSink records only if ctx is still live after a delay.
type slowSink struct {
	mem Memory
}

func (s *slowSink) Record(ctx context.Context, e Entry) error {
	time.Sleep(20 * time.Millisecond)
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.mem.Record(ctx, e)
}
func (s *slowSink) Close() error { return nil }

func TestMultiFailureDoesNotCancelOtherSinks(t *testing.T) {
	slow := &slowSink{}
	err := Multi{&failing{}, slow}.Record(context.Background(), Entry{Verb: "remove", Line: "remove 3"})
	if err == nil || err.Error() != "sink down" {
		t.Fatalf("expected failing sink error, got %v", err)
	}
	got := slow.mem.Entries()
	if len(got) != 1 || got[0].Line != "remove 3" {
		t.Fatalf("healthy sink missed the entry: %+v", got)
	}
}

func TestMultiCloseClosesAll(t *testing.T) {
	f1 := &failing{closeErr: errors.New("first")}
	f2 := &failing{}
	err := Multi{f1, f2}.Close()
	if err == nil || !strings.Contains(err.Error(), "first") {
		t.Fatalf("expected combined close error, got %v", err)
	}
	if !f1.closed || !f2.closed {
		t.Fatalf("every recorder should be closed")
	}
	if err := (Multi{}).Close(); err != nil {
		t.Fatalf("empty multi close: %v", err)
	}
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	if err := r.Record(context.Background(), Entry{}); err != nil {
		t.Fatalf("nop record: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("nop close: %v", err)
	}
}
