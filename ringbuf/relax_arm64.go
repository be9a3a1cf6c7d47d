//go:build arm64

package ringbuf

// cpuRelax executes the arm64 YIELD instruction, the architectural hint
// closest to amd64's PAUSE. Implemented in relax_arm64.s.
//
//go:noescape
func cpuRelax()
