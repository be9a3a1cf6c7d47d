//go:build !nice

package ringbuf

// spinOnce is one iteration of a blocking-point busy loop. The default
// build never yields the OS thread; it only emits the architecture's
// pause/relax hint to ease pipeline pressure.
func spinOnce() {
	cpuRelax()
}
