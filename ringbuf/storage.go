package ringbuf

// Storage owns capacity payload cells and capacity signal cells in
// separate parallel arrays, so a consumer can check a signal without
// touching a potentially large payload's cache line. Core never holds a
// lock on a slot; the pointer discipline in Core is what makes concurrent
// access from exactly one producer and one consumer safe.
//
// A Storage implementation must return the same *T and *Signal for a given
// index across the whole lifetime of the buffer — Core caches neither.
type Storage[T any] interface {
	// Capacity returns the fixed slot count this storage was built with.
	Capacity() uint32
	// Payload returns the payload cell at i, i < Capacity().
	Payload(i uint32) *T
	// SignalAt returns the signal cell at i, i < Capacity().
	SignalAt(i uint32) *Signal
}

// heapStorage is a plain in-process Storage backed by two Go slices. It is
// the allocation strategy New uses; shm.Backing provides the cross-process
// equivalent over a mapped region with the identical parallel-array shape.
type heapStorage[T any] struct {
	payload []T
	signal  []Signal
}

func newHeapStorage[T any](capacity uint32) *heapStorage[T] {
	return &heapStorage[T]{
		payload: make([]T, capacity),
		signal:  make([]Signal, capacity),
	}
}

func (s *heapStorage[T]) Capacity() uint32 {
	return uint32(len(s.payload))
}

func (s *heapStorage[T]) Payload(i uint32) *T {
	return &s.payload[i]
}

func (s *heapStorage[T]) SignalAt(i uint32) *Signal {
	return &s.signal[i]
}
