package wspr

import "fmt"

// PackGrid returns the 15 bit value of a 4 character Maidenhead locator such
// as "FN42".  Letters are A thru R in either case, digits 0 thru 9.
func PackGrid(grid string) (uint32, error) {
	var mh, ok = asciiUpper(grid)
	if !ok {
		return 0, fmt.Errorf("%w %q: only ASCII letters and digits are allowed", ErrInvalidGrid, grid)
	}

	if len(mh) == 6 {
		// Type 1 messages only carry the square.
		return 0, fmt.Errorf("%w %q: must be 4 characters, try %q", ErrInvalidGrid, grid, mh[:4])
	}

	if len(mh) != 4 {
		return 0, fmt.Errorf("%w %q: must be 4 characters", ErrInvalidGrid, grid)
	}

	for i := range 2 {
		if mh[i] < MHPairs[0].min_ch || mh[i] > MHPairs[0].max_ch {
			return 0, fmt.Errorf("%w %q: character %d must be in range of %c thru %c",
				ErrInvalidGrid, grid, i+1, MHPairs[0].min_ch, MHPairs[0].max_ch)
		}
		if !isDigit(mh[i+2]) {
			return 0, fmt.Errorf("%w %q: character %d must be a digit", ErrInvalidGrid, grid, i+3)
		}
	}

	var a = uint32(mh[0] - 'A')
	var b = uint32(mh[1] - 'A')
	var c = uint32(mh[2] - '0')
	var d = uint32(mh[3] - '0')

	return (179-10*a-c)*180 + 10*b + d, nil
}

/*------------------------------------------------------------------
 *
 * Function:	GridToLatLon
 *
 * Purpose:	Convert Maidenhead locator to latitude and longitude.
 *
 * Inputs:	maidenhead	- 2, 4, 6, 8, 10, or 12 character grid square locator.
 *
 * Returns:	Latitude and longitude of the center of the square.
 *
 * Rambling:	For 8 character form, each latitude unit is 0.25 minute.
 *		(Longitude can be up to twice that around the equator.)
 *		With another two pairs, we are down around 2 meters for latitude.
 *
 *------------------------------------------------------------------*/

const MH_MIN_PAIR = 1
const MH_MAX_PAIR = 6
const MH_UNITS = (18 * 10 * 24 * 10 * 24 * 10 * 2)

type mhPair struct {
	position string
	min_ch   byte
	max_ch   byte
	value    int
}

var MHPairs = []*mhPair{
	{"first", 'A', 'R', 10 * 24 * 10 * 24 * 10 * 2},
	{"second", '0', '9', 24 * 10 * 24 * 10 * 2},
	{"third", 'A', 'X', 10 * 24 * 10 * 2},
	{"fourth", '0', '9', 24 * 10 * 2},
	{"fifth", 'A', 'X', 10 * 2},
	{"sixth", '0', '9', 2},
} // Even so we can get center of square.

func GridToLatLon(maidenhead string) (float64, float64, error) {
	var mh, ok = asciiUpper(maidenhead)
	if !ok {
		return 0, 0, fmt.Errorf("%w %q: only ASCII letters and digits are allowed", ErrInvalidGrid, maidenhead)
	}

	var np = len(mh) / 2 /* Number of pairs of characters. */

	if len(mh)%2 != 0 || np < MH_MIN_PAIR || np > MH_MAX_PAIR {
		return 0, 0, fmt.Errorf("%w %q: must be 1 to %d pairs of characters", ErrInvalidGrid, maidenhead, MH_MAX_PAIR)
	}

	var ilat, ilon int
	for n := range np {
		if mh[2*n] < MHPairs[n].min_ch || mh[2*n] > MHPairs[n].max_ch ||
			mh[2*n+1] < MHPairs[n].min_ch || mh[2*n+1] > MHPairs[n].max_ch {
			return 0, 0, fmt.Errorf("%w %q: the %s pair of characters must be in range of %c thru %c",
				ErrInvalidGrid, maidenhead, MHPairs[n].position, MHPairs[n].min_ch, MHPairs[n].max_ch)
		}

		ilon += int(mh[2*n]-MHPairs[n].min_ch) * MHPairs[n].value
		ilat += int(mh[2*n+1]-MHPairs[n].min_ch) * MHPairs[n].value

		if n == np-1 { // If last pair, take center of square.
			ilon += MHPairs[n].value / 2
			ilat += MHPairs[n].value / 2
		}
	}

	var dlat = float64(ilat)/MH_UNITS*180. - 90.
	var dlon = float64(ilon)/MH_UNITS*360. - 180.

	return dlat, dlon, nil
}
