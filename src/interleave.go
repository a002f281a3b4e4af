package wspr

import "math/bits"

// Synchronization vector.  Occupies the low bit of every transmitted symbol.
var syncVector = [SYMBOL_COUNT]uint8{
	1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0,
	1, 0, 0, 1, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0,
	0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1,
	0, 1, 0, 0, 0, 1, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0,
	1, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1,
	1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1,
	0, 0, 1, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0, 1,
	1, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0,
	0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0,
}

// SyncVector returns a copy of the synchronization vector.
func SyncVector() [SYMBOL_COUNT]uint8 {
	return syncVector
}

// Destination of the k'th channel bit.  This is the 8 bit reversal of
// 0..255, keeping only results below SYMBOL_COUNT.
var permutation = bitReversalPermutation()

func bitReversalPermutation() [SYMBOL_COUNT]uint8 {
	var p [SYMBOL_COUNT]uint8

	var k = 0
	for i := range 256 {
		var j = bits.Reverse8(uint8(i)) //nolint:gosec
		if j < SYMBOL_COUNT {
			p[k] = j
			k++
		}
	}

	return p
}

// interleave scatters the channel bits into transmission order and merges
// them with the sync vector, giving tone numbers 0 thru 3.  Every cell of
// msg is rewritten.
func interleave(channelBits *[SYMBOL_COUNT]uint8, msg *Message) {
	for i := range msg {
		msg[i] = syncVector[i]
	}

	for k, b := range channelBits {
		msg[permutation[k]] += 2 * b
	}
}
