package ringbuf

import "sync/atomic"

// FinishedFlag is the one-shot producer->consumer EOF latch. Heap-backed
// cores use localFinished; shm.Backing binds the same interface to a word
// inside a mapped region so a second process can observe it too.
type FinishedFlag interface {
	Load() bool
	SetTrue()
}

// localFinished is the in-process FinishedFlag.
type localFinished struct {
	v atomic.Uint32
}

func (f *localFinished) Load() bool {
	return f.v.Load() != 0
}

func (f *localFinished) SetTrue() {
	f.v.Store(1)
}
