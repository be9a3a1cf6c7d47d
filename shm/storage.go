package shm

import (
	"unsafe"

	"github.com/arolek/ringclock/ringbuf"
)

// mappedStorage is ringbuf.Storage[T] laid over a shared-memory region:
// the payload array starts at offset 64 (the first cache line after the
// header) and the signal array immediately follows it, matching the
// layout both attaching processes compute independently from capacity
// and sizeof(T) alone.
type mappedStorage[T any] struct {
	payload []T
	signal  []ringbuf.Signal
}

func newMappedStorage[T any](mem []byte, capacity uint32) *mappedStorage[T] {
	var zero T
	itemSize := int(unsafe.Sizeof(zero))
	payloadOff := headerSize
	signalOff := payloadOff + int(capacity)*itemSize

	payload := unsafe.Slice((*T)(unsafe.Pointer(&mem[payloadOff])), capacity)
	signal := unsafe.Slice((*ringbuf.Signal)(unsafe.Pointer(&mem[signalOff])), capacity)
	return &mappedStorage[T]{payload: payload, signal: signal}
}

func (s *mappedStorage[T]) Capacity() uint32 {
	return uint32(len(s.payload))
}

func (s *mappedStorage[T]) Payload(i uint32) *T {
	return &s.payload[i]
}

func (s *mappedStorage[T]) SignalAt(i uint32) *ringbuf.Signal {
	return &s.signal[i]
}
