package benchlog

import (
	"path/filepath"
	"testing"
)

func TestAppendAndRecent(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "bench.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	runs := []Run{
		{Mode: "spsc", ClockKind: "dummy", Capacity: 64, Items: 1000, ElapsedSec: 0.1, BytesPerSec: 8000},
		{Mode: "spsc", ClockKind: "dummy", Capacity: 64, Items: 2000, ElapsedSec: 0.2, BytesPerSec: 16000},
	}
	for _, r := range runs {
		if err := s.Append(r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(got))
	}
	if got[0].Items != 2000 {
		t.Fatalf("expected most-recent-first ordering, got %+v", got[0])
	}
}

func TestRecentRespectsLimit(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "bench.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	for i := 0; i < 5; i++ {
		if err := s.Append(Run{Mode: "spsc", ClockKind: "dummy", Capacity: 8}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(got))
	}
}
