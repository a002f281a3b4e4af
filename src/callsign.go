package wspr

/*------------------------------------------------------------------
 *
 * Purpose:	Pack a callsign into the 28 bit field of a Type 1 message.
 *
 * Description:	Only a plain callsign is supported.  No /P, no prefixes
 *		like VE3/ and no hashed calls.  The accepted shapes are
 *		1x2, 1x3, 2x1, 2x2, 2x3 (letters before the digit x
 *		letters after it), with the first character optionally
 *		being a digit, e.g. 2E0ABC.
 *
 *		The callsign is aligned so that the digit always lands
 *		in the third position of a 6 character field:
 *
 *			K1ABC	->	" K1ABC"
 *			AB1CDE	->	"AB1CDE"
 *			G4JN	->	" G4JN "
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strings"
)

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func toUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

// asciiUpper upper-cases s one byte at a time, so the result is always the
// same length as s.  Anything outside 7 bit ASCII is refused.
func asciiUpper(s string) (string, bool) {
	var b = []byte(s)
	for i, ch := range b {
		if ch >= 0x80 {
			return "", false
		}
		b[i] = toUpper(ch)
	}

	return string(b), true
}

/*------------------------------------------------------------------
 *
 * Function:	CanonicalCallsign
 *
 * Purpose:	Align a callsign into the fixed 6 character field.
 *
 * Inputs:	callsign	- 2 to 6 characters.  Case doesn't matter.
 *				  Surrounding blanks are ignored.
 *
 * Returns:	Upper case, blank padded, 6 characters.
 *
 * Errors:	ErrInvalidCallsign when neither the second nor the
 *		third character is a digit, when the result would not
 *		fit in 6 characters, or when any character is not
 *		allowed in its position.
 *
 *------------------------------------------------------------------*/

func CanonicalCallsign(callsign string) (string, error) {
	var call, ok = asciiUpper(strings.TrimSpace(callsign))
	if !ok {
		return "", fmt.Errorf("%w %q: only ASCII letters and digits are allowed", ErrInvalidCallsign, callsign)
	}

	if len(call) < 2 {
		return "", fmt.Errorf("%w %q: too short", ErrInvalidCallsign, callsign)
	}

	if strings.ContainsAny(call, " \t") {
		return "", fmt.Errorf("%w %q: embedded blank", ErrInvalidCallsign, callsign)
	}

	var aligned string

	switch {
	case isDigit(call[1]):
		aligned = " " + call // 1x callsigns
	case len(call) > 2 && isDigit(call[2]):
		aligned = call // 2x callsigns
	default:
		return "", fmt.Errorf("%w %q: needs a digit in the second or third position", ErrInvalidCallsign, callsign)
	}

	if len(aligned) > CALLSIGN_LEN {
		return "", fmt.Errorf("%w %q: too long", ErrInvalidCallsign, callsign)
	}

	aligned += strings.Repeat(" ", CALLSIGN_LEN-len(aligned))

	// Run every position through its character mapping so the
	// caller learns about bad characters here, not later.
	for i := range CALLSIGN_LEN {
		var _, err = callsignCharValue(i, aligned[i])
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrInvalidCallsign, callsign, err)
		}
	}

	return aligned, nil
}

// digitOrLetterValue maps 0-9 to 0-9, A-Z to 10-35 and blank to 36.
func digitOrLetterValue(ch byte) (uint32, bool) {
	ch = toUpper(ch)

	switch {
	case isDigit(ch):
		return uint32(ch - '0'), true
	case isUpper(ch):
		return uint32(ch-'A') + 10, true
	case ch == ' ':
		return 36, true
	default:
		return 0, false
	}
}

// letterValue maps A-Z to 0-25 and blank to 26.
func letterValue(ch byte) (uint32, bool) {
	ch = toUpper(ch)

	switch {
	case isUpper(ch):
		return uint32(ch - 'A'), true
	case ch == ' ':
		return 26, true
	default:
		return 0, false
	}
}

/*
 * Radix of each canonical position.  The first may be blank (37 values),
 * the second may not (36), the third is the digit (10) and the last three
 * are letters or blank (27).
 */

var callsignRadix = [CALLSIGN_LEN]uint32{37, 36, 10, 27, 27, 27}

func callsignCharValue(pos int, ch byte) (uint32, error) {
	var v uint32
	var ok bool

	if pos < 3 {
		v, ok = digitOrLetterValue(ch)
	} else {
		v, ok = letterValue(ch)
	}

	if !ok || v >= callsignRadix[pos] {
		return 0, fmt.Errorf("character %q not allowed in position %d", ch, pos+1)
	}

	return v, nil
}

// PackCallsign returns the 28 bit value of a callsign.
func PackCallsign(callsign string) (uint32, error) {
	var call, err = CanonicalCallsign(callsign)
	if err != nil {
		return 0, err
	}

	var n uint32
	for i := range CALLSIGN_LEN {
		var v, _ = callsignCharValue(i, call[i])
		n = n*callsignRadix[i] + v
	}

	return n, nil
}
