// Package ringbuf implements a bounded, lock-free single-producer /
// single-consumer queue.
//
// The hot path never takes a lock and never performs an atomic
// read-modify-write: producer and consumer each own one pointer, advance it
// with a single release store, and read the other side's pointer with a
// single acquire load. A wrap-tagged Pointer (see pointer.go) disambiguates
// "full" from "empty" without an extra atomic counter or a capacity+1 slot.
//
// Core[T] is usable directly over a heap-allocated slice (see New) or laid
// out inside a shared-memory segment by package shm. Both producer and
// consumer busy-spin at the blocking points named in the Core method docs;
// build with the nice tag to add a cooperative runtime.Gosched after the
// relax hint in each spin iteration.
package ringbuf
