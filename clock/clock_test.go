package clock

import (
	"testing"
	"time"
)

// TestDummyMonotoneNonDecreasing checks that repeated reads of a
// Dummy-sourced clock never go backwards.
func TestDummyMonotoneNonDecreasing(t *testing.T) {
	c, err := New(Dummy, -1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	prev := c.Read()
	for i := 0; i < 1000; i++ {
		cur := c.Read()
		if cur < prev {
			t.Fatalf("clock went backwards: %v -> %v", prev, cur)
		}
		prev = cur
	}
}

// TestDummyAdvancesByWholeUnits confirms the Dummy source's deterministic
// +1-per-iteration contract is visible from the reader side: after letting
// the updater run for a while, the settled value must be an integer.
func TestDummyAdvancesByWholeUnits(t *testing.T) {
	c, err := New(Dummy, -1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	time.Sleep(2 * time.Millisecond)
	v := c.Read()
	if v != float64(int64(v)) {
		t.Fatalf("Dummy source produced a non-integer reading: %v", v)
	}
}

// TestReadNeverObservesTornWrite races a reader goroutine against the
// updater for 20ms and checks that no read is smaller than the read before
// it.
func TestReadNeverObservesTornWrite(t *testing.T) {
	c, err := New(Dummy, -1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		deadline := time.Now().Add(20 * time.Millisecond)
		prev := c.Read()
		for time.Now().Before(deadline) {
			cur := c.Read()
			if cur < prev {
				t.Errorf("non-monotone read: %v -> %v", prev, cur)
			}
			prev = cur
		}
	}()
	<-done
}

// TestSystemSourceDoesNotError exercises the real OS monotonic clock path;
// this is the source most likely to fail under a sandboxed or emulated
// environment, so it only asserts construction succeeds and the reading is
// not negative, not any specific rate.
func TestSystemSourceDoesNotError(t *testing.T) {
	c, err := New(System, -1)
	if err != nil {
		t.Fatalf("New(System): %v", err)
	}
	defer c.Close()

	time.Sleep(2 * time.Millisecond)
	if v := c.Read(); v < 0 {
		t.Fatalf("System clock read negative elapsed seconds: %v", v)
	}
}

// TestCycleDegradesCleanly checks that requesting Cycle never produces a
// construction error: on architectures or environments where the TSC
// binding is unusable, it must silently report Degraded() instead.
func TestCycleDegradesCleanly(t *testing.T) {
	c, err := New(Cycle, -1)
	if err != nil {
		t.Fatalf("New(Cycle): %v", err)
	}
	defer c.Close()

	time.Sleep(2 * time.Millisecond)
	_ = c.Degraded()
	if v := c.Read(); v < 0 {
		t.Fatalf("Cycle clock read negative elapsed seconds: %v", v)
	}
}

// TestCloseJoinsUpdater verifies that Close returns; Close waits on the
// updater's WaitGroup, so returning means the updater goroutine has exited.
func TestCloseJoinsUpdater(t *testing.T) {
	c, err := New(Dummy, -1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Close()
}

// TestUnknownKindErrors confirms New rejects a Kind value outside the
// enum instead of silently defaulting to a source.
func TestUnknownKindErrors(t *testing.T) {
	if _, err := New(Kind(99), -1); err == nil {
		t.Fatal("New with an unknown Kind should return an error")
	}
}
