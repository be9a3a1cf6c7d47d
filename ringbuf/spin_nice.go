//go:build nice

package ringbuf

import "runtime"

// spinOnce is one iteration of a blocking-point busy loop. The nice build
// additionally yields the OS thread between relax hints; this is advisory
// scheduling, not a synchronization point — the spinner is still released
// only by its counterpart advancing the opposite pointer.
func spinOnce() {
	cpuRelax()
	runtime.Gosched()
}
