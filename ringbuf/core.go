package ringbuf

// Core is the bounded SPSC queue. Exactly one goroutine (or, over a
// shm.Backing, one process) may call the producer methods (Allocate, Push,
// PushItem, Insert); exactly one may call the consumer methods (Pop,
// PopN, Peek, Recycle). Calling a producer method from two goroutines, or
// a consumer method from two goroutines, corrupts the queue — Core does
// not detect this.
//
// size/space_avail/capacity never block and are advisory under
// concurrent pointer motion: a caller must not use them to gate
// correctness, only Allocate/Push/Pop's own blocking does that.
type Core[T any] struct {
	capacity uint32
	storage  Storage[T]
	writePt  atomicPointer
	readPt   atomicPointer
	finished FinishedFlag

	// producer-local: never read or written by the consumer side.
	allocateOutstanding bool
	allocatedAt         Pointer
}

// New builds a heap-backed Core of the given capacity, which must be > 0.
func New[T any](capacity int) *Core[T] {
	if capacity <= 0 {
		panic("ringbuf: capacity must be > 0")
	}
	return newCore[T](newHeapStorage[T](uint32(capacity)), &localFinished{})
}

// newCore wires a pre-built Storage and FinishedFlag together over
// Go-heap-backed pointer words.
func newCore[T any](storage Storage[T], finished FinishedFlag) *Core[T] {
	return &Core[T]{
		capacity: storage.Capacity(),
		storage:  storage,
		writePt:  newLocalPointer(),
		readPt:   newLocalPointer(),
		finished: finished,
	}
}

// NewOver lays a Core directly over caller-supplied pointer words and a
// FinishedFlag instead of private heap state. shm.Backing uses this to
// give both attaching processes a Core whose write_pt/read_pt/finished
// state all live in the same mapped region, so the two sides share one
// publication discipline the way two goroutines would.
//
// writePtWord and readPtWord must be 8-byte aligned and must outlive the
// returned Core; callers attaching to a pre-existing region (the
// Consumer direction) must pass words that already hold the producer's
// current pointers rather than freshly zeroed ones.
func NewOver[T any](storage Storage[T], finished FinishedFlag, writePtWord, readPtWord *uint64) *Core[T] {
	return &Core[T]{
		capacity: storage.Capacity(),
		storage:  storage,
		writePt:  newPointerAt(writePtWord),
		readPt:   newPointerAt(readPtWord),
		finished: finished,
	}
}

// Capacity returns the fixed slot count.
func (c *Core[T]) Capacity() int {
	return int(c.capacity)
}

// Size returns the current element count. Advisory under contention: see
// the Core doc comment.
func (c *Core[T]) Size() int {
	w, r := c.writePt.load(), c.readPt.load()
	wv, rv := w.Value(), r.Value()
	switch {
	case wv == rv && w.WrapIndicator() == r.WrapIndicator():
		return 0
	case wv == rv:
		return int(c.capacity)
	case rv < wv:
		return int(wv - rv)
	default:
		return int(c.capacity-rv) + int(wv)
	}
}

// SpaceAvail returns capacity() - size().
func (c *Core[T]) SpaceAvail() int {
	return int(c.capacity) - c.Size()
}

// WriteFinished reports whether a push with SignalEof has been made. The
// flag is set before the Eof slot is published, so a consumer that has
// popped the Eof item always observes true. It is terminal: once true, it
// stays true.
func (c *Core[T]) WriteFinished() bool {
	return c.finished.Load()
}

// Allocate blocks until a slot is free, then returns an exclusive borrow
// of it. The caller owns the returned pointer exclusively until the
// matching Push(signal) completes; no other Core method may be called in
// between.
func (c *Core[T]) Allocate() *T {
	for c.SpaceAvail() == 0 {
		spinOnce()
	}
	c.allocatedAt = c.writePt.load()
	c.allocateOutstanding = true
	return c.storage.Payload(c.allocatedAt.Value())
}

// Push publishes the slot returned by the matching Allocate, tags it with
// signal, and advances writePt. It is a no-op if no Allocate is
// outstanding. The signal store is ordered before the pointer advance so
// any consumer observing the new writePt also observes the new signal.
func (c *Core[T]) Push(signal Signal) {
	if !c.allocateOutstanding {
		return
	}
	*c.storage.SignalAt(c.allocatedAt.Value()) = signal
	if signal == SignalEof {
		c.finished.SetTrue()
	}
	c.writePt.storeRelease(c.allocatedAt.Inc(c.capacity))
	c.allocateOutstanding = false
}

// PushItem blocks until a slot is free, copies item into it, tags it with
// signal, publishes, and advances writePt. Equivalent to
// Allocate → assign → Push(signal).
func (c *Core[T]) PushItem(item T, signal Signal) {
	p := c.Allocate()
	*p = item
	c.Push(signal)
}

// Insert enqueues every element of items; the final element carries
// signal, every preceding element carries SignalNone. Each element blocks,
// independently, until space is available.
func (c *Core[T]) Insert(items []T, signal Signal) {
	for i, item := range items {
		s := SignalNone
		if i == len(items)-1 {
			s = signal
		}
		c.PushItem(item, s)
	}
}

// Pop blocks until an element is available, copies its payload into out
// and — if outSignal is non-nil — its signal into *outSignal, then
// advances readPt, releasing the slot back to the producer.
func (c *Core[T]) Pop(out *T, outSignal *Signal) {
	for c.Size() == 0 {
		spinOnce()
	}
	idx := c.readPt.load().Value()
	*out = *c.storage.Payload(idx)
	if outSignal != nil {
		*outSignal = *c.storage.SignalAt(idx)
	}
	c.readPt.storeRelease(c.readPt.load().Inc(c.capacity))
}

// PopN pops exactly len(out) items, blocking element-wise until each is
// available. outSignals may be nil; otherwise it must have the same
// length as out.
func (c *Core[T]) PopN(out []T, outSignals []Signal) {
	for i := range out {
		var sig *Signal
		if outSignals != nil {
			sig = &outSignals[i]
		}
		c.Pop(&out[i], sig)
	}
}

// Peek blocks until an element is available and returns a shared borrow of
// the head payload without advancing readPt; if outSignal is non-nil the
// head signal is copied into it. The returned pointer is valid only until
// the next Recycle or Pop call.
func (c *Core[T]) Peek(outSignal *Signal) *T {
	for c.Size() == 0 {
		spinOnce()
	}
	idx := c.readPt.load().Value()
	if outSignal != nil {
		*outSignal = *c.storage.SignalAt(idx)
	}
	return c.storage.Payload(idx)
}

// Recycle discards the n head items without copying them anywhere,
// advancing readPt by n. The caller must ensure size() >= n; n must not
// exceed capacity.
func (c *Core[T]) Recycle(n int) {
	if n < 0 || n > int(c.capacity) {
		panic("ringbuf: recycle count exceeds capacity")
	}
	c.readPt.storeRelease(c.readPt.load().IncBy(uint32(n), c.capacity))
}
