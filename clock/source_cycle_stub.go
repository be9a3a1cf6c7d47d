//go:build !amd64

package clock

// newCycleSource reports failure on architectures with no cycle-counter
// binding; the caller falls back to System.
func newCycleSource() (timeSource, bool) {
	return nil, false
}
