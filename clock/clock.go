package clock

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/arolek/ringclock/ringerr"
)

// Kind selects the updater's time source. It is fixed at New and never
// changes for the life of a Clock — there is never a reason to switch
// sources after construction. New resolves it once to a timeSource, which
// the updater loop then samples on every iteration.
type Kind int

const (
	// Dummy advances by exactly +1 unit per updater iteration. Intended
	// for unit tests that need a deterministic, OS-independent source.
	Dummy Kind = iota
	// Cycle reads the CPU cycle counter and converts deltas using a
	// baseline measured at construction. Falls back to System on
	// architectures with no cycle-counter binding.
	Cycle
	// System samples the OS monotonic clock each iteration.
	System
)

func (k Kind) String() string {
	switch k {
	case Dummy:
		return "dummy"
	case Cycle:
		return "cycle"
	case System:
		return "system"
	default:
		return "unknown"
	}
}

// Clock is a background-updated monotonic seconds counter. Construct one
// with New, read it with Read, and release it with Close before process
// exit.
type Clock struct {
	a atomic.Uint64 // float64 bits, written first by the updater
	b atomic.Uint64 // float64 bits, written second; a==b means "settled"

	done chan struct{}
	wg   sync.WaitGroup

	kind     Kind
	degraded bool // true if Cycle silently fell back to System
}

// New starts a Clock whose updater uses the given source. cpu pins the
// updater's OS thread to that logical CPU on platforms that support
// pinning; a negative cpu leaves it unpinned. New returns a construction
// error (CodeSourceUnavailable) if kind is not a known source.
func New(kind Kind, cpu int) (*Clock, error) {
	c := &Clock{
		done: make(chan struct{}),
		kind: kind,
	}

	src, degraded, err := newSource(kind)
	if err != nil {
		return nil, ringerr.New(ringerr.CodeSourceUnavailable, "clock.New", err)
	}
	c.degraded = degraded

	start := src.sample()
	c.a.Store(math.Float64bits(start))
	c.b.Store(math.Float64bits(start))

	c.wg.Add(1)
	started := make(chan struct{})
	go c.updateLoop(cpu, src, started)
	<-started

	return c, nil
}

// Degraded reports whether the requested Kind could not be honored and
// the updater silently fell back to a portable source.
func (c *Clock) Degraded() bool {
	return c.degraded
}

// Read returns the most recently settled value. It never blocks on the
// updater: a concurrent reader retries only while it observes the
// updater mid-iteration (a != b), never longer.
func (c *Clock) Read() float64 {
	for {
		av := c.a.Load()
		bv := c.b.Load()
		if av == bv {
			return math.Float64frombits(bv)
		}
	}
}

// Close signals the updater to exit and waits for it to do so. The Clock
// must be closed before process exit; an unclosed updater is torn down
// forcibly by the host.
func (c *Clock) Close() {
	close(c.done)
	c.wg.Wait()
}

func (c *Clock) updateLoop(cpu int, src timeSource, started chan<- struct{}) {
	defer c.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if cpu >= 0 {
		pinCurrentThread(cpu)
	}
	close(started)

	value := math.Float64frombits(c.a.Load())
	for {
		select {
		case <-c.done:
			return
		default:
		}

		value += src.sample()
		bits := math.Float64bits(value)
		c.a.Store(bits)
		c.b.Store(bits)
	}
}

// timeSource yields the elapsed seconds since its previous sample call.
// The System and Cycle sources establish their baseline on the first call
// and return 0; dummySource returns 1 on every call, including the first.
type timeSource interface {
	sample() float64
}
