//go:build linux

package clock

import "golang.org/x/sys/unix"

// pinCurrentThread pins the calling OS thread to a single logical CPU via
// sched_setaffinity(2). The caller must have already called
// runtime.LockOSThread so the pin sticks to the goroutine for its whole
// life. Out-of-range or permission-denied requests are swallowed: a failed
// pin just leaves the updater free-floating, which is a performance
// degradation, not a correctness one.
func pinCurrentThread(cpu int) {
	if cpu < 0 {
		return
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	_ = unix.SchedSetaffinity(0, &set)
}
