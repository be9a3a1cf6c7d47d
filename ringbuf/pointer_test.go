package ringbuf

import "testing"

// TestPointerIncWrapsAtCapacity checks invariant 5: iterating Inc exactly
// capacity times from any state returns value unchanged with wrap bumped
// by exactly one.
func TestPointerIncWrapsAtCapacity(t *testing.T) {
	const capacity = 7
	for start := uint32(0); start < capacity; start++ {
		p := newPointer(start, 3)
		got := p
		for i := 0; i < capacity; i++ {
			got = got.Inc(capacity)
		}
		if got.Value() != start {
			t.Fatalf("start=%d: value = %d, want %d", start, got.Value(), start)
		}
		if got.WrapIndicator() != p.WrapIndicator()+1 {
			t.Fatalf("start=%d: wrap = %d, want %d", start, got.WrapIndicator(), p.WrapIndicator()+1)
		}
	}
}

// TestPointerIncByMatchesRepeatedInc verifies IncBy(n, ...) agrees with n
// single-step Inc calls for a handful of n values and starting points.
func TestPointerIncByMatchesRepeatedInc(t *testing.T) {
	const capacity = 5
	for start := uint32(0); start < capacity; start++ {
		for n := uint32(0); n < 3*capacity; n++ {
			byLoop := newPointer(start, 0)
			for i := uint32(0); i < n; i++ {
				byLoop = byLoop.Inc(capacity)
			}
			byJump := newPointer(start, 0).IncBy(n, capacity)
			if byLoop != byJump {
				t.Fatalf("start=%d n=%d: loop=%v jump=%v", start, n, byLoop, byJump)
			}
		}
	}
}

// TestPointerIncWrapsAtZeroOnly checks wrap only increments on the step
// that rolls value through zero, never otherwise.
func TestPointerIncWrapsAtZeroOnly(t *testing.T) {
	const capacity = 4
	p := newPointer(0, 0)
	for i := 0; i < 2*capacity; i++ {
		next := p.Inc(capacity)
		wantBump := next.Value() == 0
		gotBump := next.WrapIndicator() != p.WrapIndicator()
		if gotBump != wantBump {
			t.Fatalf("step %d: value %d->%d wrap %d->%d, bump=%v want=%v",
				i, p.Value(), next.Value(), p.WrapIndicator(), next.WrapIndicator(), gotBump, wantBump)
		}
		p = next
	}
}
