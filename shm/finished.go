package shm

import (
	"sync/atomic"
	"unsafe"
)

// mappedFinished binds ringbuf.FinishedFlag to the write_finished word in
// the shared header, so the consumer process can observe Eof through the
// structure itself instead of only inferring it from the in-band signal.
type mappedFinished struct {
	word *uint32
}

func newMappedFinished(mem []byte) *mappedFinished {
	return &mappedFinished{word: (*uint32)(unsafe.Pointer(&mem[offWriteFinished]))}
}

func (f *mappedFinished) Load() bool {
	return atomic.LoadUint32(f.word) != 0
}

func (f *mappedFinished) SetTrue() {
	atomic.StoreUint32(f.word, 1)
}
