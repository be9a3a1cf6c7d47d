// Package clock provides a process-wide monotonic seconds counter that
// readers sample in O(1) without a lock or a syscall.
//
// A single updater goroutine, pinned to one CPU where the platform allows
// it, holds two equal-valued shadow registers and advances both once per
// iteration; a reader loads the first shadow then the second and retries
// until they match, the seqlock-free pattern described in the Clock.Read
// doc comment. The source feeding the updater's elapsed-time samples is chosen
// once at construction (Dummy, Cycle, or System) and never changes for the
// life of the Clock.
package clock
