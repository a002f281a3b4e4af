package wspr

import (
	"fmt"
	"slices"
)

// Power levels, in dBm, that WSPR software will display.  Anything else
// still encodes, but a receiver will round or reject it.
var standardPowers = []int{
	0, 3, 7, 10, 13, 17, 20, 23, 27, 30, 33, 37, 40, 43, 47, 50, 53, 57, 60,
}

// PackPower returns the 7 bit value of a transmit power.  The encoding is
// simply dBm + 64, so anything from -64 to 63 fits.
func PackPower(dBm int) (uint32, error) {
	var p = dBm + POWER_OFFSET

	if p < 0 || p >= 1<<POWER_BITS {
		return 0, fmt.Errorf("%w %d dBm: must be in range of %d thru %d",
			ErrInvalidPower, dBm, -POWER_OFFSET, (1<<POWER_BITS)-1-POWER_OFFSET)
	}

	return uint32(p), nil //nolint:gosec
}

// IsStandardPower reports whether dBm is one of the published WSPR levels.
func IsStandardPower(dBm int) bool {
	return slices.Contains(standardPowers, dBm)
}

// StandardPowers returns a copy of the published WSPR power levels.
func StandardPowers() []int {
	return slices.Clone(standardPowers)
}
