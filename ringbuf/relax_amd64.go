//go:build amd64

package ringbuf

// cpuRelax executes the amd64 PAUSE instruction so a spin loop backs off
// the execution pipeline without leaving userspace. Implemented in
// relax_amd64.s.
//
//go:noescape
func cpuRelax()
