package ringbuf

// Signal is an in-band per-slot tag carried alongside a slot's payload.
// It is stored in a parallel array so a consumer can check for Eof without
// loading a potentially large payload.
type Signal uint8

const (
	// SignalNone marks a slot with no framing attached.
	SignalNone Signal = 0
	// SignalEof marks the final slot of a producer's stream. Tag 0 always
	// means "no signal"; Eof is the first non-zero tag.
	SignalEof Signal = 1
)

// String renders a Signal for logs and test failure messages.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalEof:
		return "eof"
	default:
		return "unknown"
	}
}
