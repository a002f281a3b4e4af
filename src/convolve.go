package wspr

/*------------------------------------------------------------------
 *
 * Purpose:	Rate 1/2, constraint length 32 convolutional encoder.
 *
 * Description:	Each input bit is shifted into a 32 bit register.
 *		Two output bits are then formed as the parity of the
 *		register ANDed with each generator polynomial.
 *
 *------------------------------------------------------------------*/

import "math/bits"

const POLY1 = 0xf2d05351
const POLY2 = 0xe4613c47

// Convolver is the encoder shift register.  The zero value is ready to use.
type Convolver struct {
	acc uint32
}

// Push shifts one bit in (only the low bit of b is used) and returns the
// two channel bits for it.
func (c *Convolver) Push(b uint32) (uint8, uint8) {
	c.acc = c.acc<<1 | b&1

	return parity(c.acc & POLY1), parity(c.acc & POLY2)
}

// Reset clears the shift register.
func (c *Convolver) Reset() {
	c.acc = 0
}

func parity(x uint32) uint8 {
	return uint8(bits.OnesCount32(x) & 1) //nolint:gosec
}

// pushField feeds the low width bits of v, most significant first.
func (c *Convolver) pushField(out []uint8, v uint32, width int) []uint8 {
	for i := width - 1; i >= 0; i-- {
		var b0, b1 = c.Push(v >> i)
		out = append(out, b0, b1)
	}

	return out
}

// convolve encodes the 50 bit payload and 31 bit zero tail of f into
// SYMBOL_COUNT channel bits, in emission order.
func convolve(f Fields) [SYMBOL_COUNT]uint8 {
	var c Convolver
	var out [SYMBOL_COUNT]uint8

	var s = out[:0]
	s = c.pushField(s, f.Callsign, CALLSIGN_BITS)
	s = c.pushField(s, f.Grid, GRID_BITS)
	s = c.pushField(s, f.Power, POWER_BITS)
	c.pushField(s, 0, TAIL_BITS)

	return out
}
