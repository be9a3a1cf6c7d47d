package ringbuf

// Pointer packs a buffer position and its wrap generation into one 64-bit
// word so the pair always travels as a single load/store. The low 32 bits
// hold value, the position within [0, capacity); the high 32 bits hold
// wrap, a generation counter that increments every time value rolls
// through zero.
//
// wrap is what lets size() tell "empty" from "full" when a producer's and
// a consumer's value coincide: equal value with equal wrap means empty,
// equal value with differing wrap means full. No additional atomic flag
// or capacity+1 slot is needed.
type Pointer uint64

const (
	valueBits = 32
	valueMask = 1<<valueBits - 1
)

// newPointer packs value and wrap into a Pointer.
func newPointer(value, wrap uint32) Pointer {
	return Pointer(uint64(wrap)<<valueBits | uint64(value))
}

// Value returns the position in [0, capacity).
func (p Pointer) Value() uint32 {
	return uint32(p & valueMask)
}

// WrapIndicator returns the wrap generation.
func (p Pointer) WrapIndicator() uint32 {
	return uint32(p >> valueBits)
}

// Inc advances the pointer by one slot: value wraps modulo capacity and
// wrap increments exactly when value rolls through zero.
func (p Pointer) Inc(capacity uint32) Pointer {
	return p.IncBy(1, capacity)
}

// IncBy advances the pointer by n slots.
func (p Pointer) IncBy(n uint32, capacity uint32) Pointer {
	value := p.Value() + n
	wrap := p.WrapIndicator() + value/capacity
	return newPointer(value%capacity, wrap)
}
