package wspr

import "errors"

// Failures detected by the field encoder.  Returned errors wrap one of these
// so callers can test with errors.Is.
var (
	ErrInvalidCallsign = errors.New("invalid callsign")
	ErrInvalidGrid     = errors.New("invalid grid locator")
	ErrInvalidPower    = errors.New("invalid power")
	ErrFieldOverflow   = errors.New("field value does not fit its bit width")
)
