package wspr

// Sizes of the Type 1 message and its fields.

/*
 * Packed field widths, in bits.
 * The callsign, grid and power are sent most significant bit first,
 * in that order, making a 50 bit payload.
 */

const CALLSIGN_BITS = 28
const GRID_BITS = 15
const POWER_BITS = 7

const PAYLOAD_BITS = CALLSIGN_BITS + GRID_BITS + POWER_BITS

/*
 * The payload is followed by zeros to flush the convolutional encoder.
 * 31 is one less than the width of the shift register.
 */

const TAIL_BITS = 31

const INPUT_BITS = PAYLOAD_BITS + TAIL_BITS // 81

/*
 * Rate 1/2 code.  Two channel symbols for each input bit.
 * This is also the number of 4-FSK tones transmitted.
 */

const SYMBOL_COUNT = 2 * INPUT_BITS // 162

/*
 * The usual printed layout of a transmission: 9 rows of 18 symbols.
 */

const SYMBOLS_PER_ROW = 18
const SYMBOL_ROWS = SYMBOL_COUNT / SYMBOLS_PER_ROW

/*
 * Canonical callsign field is always 6 characters.
 */

const CALLSIGN_LEN = 6

/*
 * Power is sent as dBm + 64.
 */

const POWER_OFFSET = 64
