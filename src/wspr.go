/*
Package wspr encodes Type 1 WSPR beacon messages.

A Type 1 message carries a plain callsign, a 4 character Maidenhead locator
and the transmit power.  The three fields are packed into 50 bits, run
through a rate 1/2 convolutional code, interleaved and merged with the sync
vector to give the 162 tones of one transmission.

	var msg, err = wspr.Encode("K1ABC", "FN42", 37)

The encoder keeps no state between calls.  Concurrent callers are fine as
long as each uses its own Message.
*/
package wspr

// Message is one transmission: SYMBOL_COUNT tone numbers, each 0 thru 3.
type Message [SYMBOL_COUNT]byte

// Encode returns the tone sequence for a callsign, grid and power in dBm.
func Encode(callsign, grid string, dBm int) (Message, error) {
	var msg Message

	var err = EncodeInto(&msg, callsign, grid, dBm)
	if err != nil {
		return Message{}, err
	}

	return msg, nil
}

// EncodeInto is Encode writing to a caller supplied buffer.  On error msg is
// not modified; on success every symbol is overwritten.
func EncodeInto(msg *Message, callsign, grid string, dBm int) error {
	var f, err = Pack(callsign, grid, dBm)
	if err != nil {
		return err
	}

	return EncodeFields(msg, f)
}

// EncodeFields encodes already packed fields.
func EncodeFields(msg *Message, f Fields) error {
	var err = f.Validate()
	if err != nil {
		return err
	}

	var channelBits = convolve(f)
	interleave(&channelBits, msg)

	return nil
}
