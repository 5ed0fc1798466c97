package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry(&searcherStub{}, time.Minute, zerolog.Nop())

	a := r.Get("a")
	if a == nil {
		t.Fatalf("expected controller")
	}
	if r.Get("a") != a {
		t.Fatalf("expected same controller for the same session")
	}
	if r.Get("b") == a {
		t.Fatalf("expected distinct controllers per session")
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", r.Len())
	}
}

func TestRegistry_Sweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(&searcherStub{}, 10*time.Minute, zerolog.Nop())
	r.now = func() time.Time { return now }

	r.Get("old")
	now = now.Add(8 * time.Minute)
	r.Get("fresh")

	if removed := r.Sweep(now.Add(5 * time.Minute)); removed != 1 {
		t.Fatalf("expected one idle session removed, got %d", removed)
	}
	if r.Len() != 1 {
		t.Fatalf("expected one session left, got %d", r.Len())
	}

	// touching a session keeps it alive
	now = now.Add(9 * time.Minute)
	r.Get("fresh")
	if removed := r.Sweep(now.Add(time.Minute)); removed != 0 {
		t.Fatalf("expected no removal, got %d", removed)
	}
}

func TestNewRegistry_DefaultTTL(t *testing.T) {
	r := NewRegistry(&searcherStub{}, 0, zerolog.Nop())
	if r.ttl != DefaultIdleTTL {
		t.Fatalf("expected default ttl, got %s", r.ttl)
	}
}

func TestRegistry_SweepLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(&searcherStub{}, time.Minute, zerolog.New(&buf).Level(zerolog.DebugLevel))
	r.now = func() time.Time { return now }

	r.Get("a")
	r.Get("b")
	if removed := r.Sweep(now.Add(time.Hour)); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	if got := strings.Count(buf.String(), "swept idle sessions"); got != 1 {
		t.Fatalf("expected one sweep log line, got %d: %s", got, buf.String())
	}

	buf.Reset()
	r.Sweep(now.Add(2 * time.Hour))
	if buf.Len() != 0 {
		t.Fatalf("expected no log for an empty sweep, got %s", buf.String())
	}
}
