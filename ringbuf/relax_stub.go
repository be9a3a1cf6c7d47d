//go:build !amd64 && !arm64

package ringbuf

// cpuRelax is a no-op on architectures with no known pause/yield hint.
func cpuRelax() {}
