package clock

// newSource builds the timeSource for kind. It reports degraded=true when
// the requested kind could not be honored on this platform and the
// updater silently fell back to a portable source — a construction-time
// degradation per spec, not a construction error.
func newSource(kind Kind) (src timeSource, degraded bool, err error) {
	switch kind {
	case Dummy:
		return &dummySource{}, false, nil
	case System:
		return &systemSource{}, false, nil
	case Cycle:
		src, ok := newCycleSource()
		if ok {
			return src, false, nil
		}
		return &systemSource{}, true, nil
	default:
		return nil, false, errUnknownKind(kind)
	}
}

type errUnknownKind Kind

func (e errUnknownKind) Error() string {
	return "unknown clock kind " + Kind(e).String()
}

// dummySource advances by exactly +1 per sample, for deterministic tests.
type dummySource struct{}

func (*dummySource) sample() float64 { return 1 }
