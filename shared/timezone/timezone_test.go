package timezone_test

import (
	"testing"
	"time"

	"tasklist/shared/timezone"
)

func TestNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := timezone.Now()
	after := time.Now().Add(time.Second)

	if now.Before(before) || now.After(after) {
		t.Errorf("expected Now() to be close to the wall clock, got %v", now)
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(ts, time.RFC3339)
	parsed, err := time.Parse(time.RFC3339, formatted)
	if err != nil {
		t.Fatalf("expected RFC3339 output, got %q: %v", formatted, err)
	}

	if !parsed.Equal(ts) {
		t.Errorf("expected formatted time to represent the same instant, got %v", parsed)
	}
}
