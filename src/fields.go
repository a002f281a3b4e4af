package wspr

import "fmt"

// Fields holds the three packed values of a Type 1 message.
type Fields struct {
	Callsign uint32 // 28 bits
	Grid     uint32 // 15 bits
	Power    uint32 // 7 bits
}

// Pack runs the field encoder over all three inputs.  The first failure is
// returned; a partially packed message is never produced.
func Pack(callsign, grid string, dBm int) (Fields, error) {
	var f Fields
	var err error

	if f.Callsign, err = PackCallsign(callsign); err != nil {
		return Fields{}, err
	}

	if f.Grid, err = PackGrid(grid); err != nil {
		return Fields{}, err
	}

	if f.Power, err = PackPower(dBm); err != nil {
		return Fields{}, err
	}

	return f, nil
}

// Validate checks that each field fits its width.  Values built by Pack
// always do; this guards hand-assembled Fields.
func (f Fields) Validate() error {
	switch {
	case f.Callsign >= 1<<CALLSIGN_BITS:
		return fmt.Errorf("%w: callsign 0x%x exceeds %d bits", ErrFieldOverflow, f.Callsign, CALLSIGN_BITS)
	case f.Grid >= 1<<GRID_BITS:
		return fmt.Errorf("%w: grid 0x%x exceeds %d bits", ErrFieldOverflow, f.Grid, GRID_BITS)
	case f.Power >= 1<<POWER_BITS:
		return fmt.Errorf("%w: power 0x%x exceeds %d bits", ErrFieldOverflow, f.Power, POWER_BITS)
	}

	return nil
}
