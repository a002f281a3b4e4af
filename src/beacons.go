package wspr

/*------------------------------------------------------------------
 *
 * Purpose:	Encode a list of beacons read from a YAML file.
 *
 * Description:	Someone running a multi-band or multi-station beacon
 *		wants all their tone lists generated in one go.
 *
 *		beacons:
 *		  - callsign: K1ABC
 *		    grid: FN42
 *		    power: 37
 *		  - callsign: G4JNT
 *		    grid: IO90
 *		    power: 30
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type Beacon struct {
	Callsign string `yaml:"callsign"`
	Grid     string `yaml:"grid"`
	Power    int    `yaml:"power"`
}

type beaconFile struct {
	Beacons []Beacon `yaml:"beacons"`
}

// Result pairs a beacon with its encoded transmission.
type Result struct {
	Beacon  Beacon
	Message Message
}

func (b Beacon) String() string {
	return fmt.Sprintf("%s %s %d", b.Callsign, b.Grid, b.Power)
}

func LoadBeacons(path string) ([]Beacon, error) {
	var fp, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var beacons, parseErr = ParseBeacons(fp)
	if parseErr != nil {
		return nil, fmt.Errorf("%s: %w", path, parseErr)
	}

	return beacons, nil
}

// ParseBeacons reads the YAML beacon list.  Unknown keys are an error, as
// a misspelt "power" would otherwise silently become 0 dBm.
func ParseBeacons(r io.Reader) ([]Beacon, error) {
	var dec = yaml.NewDecoder(r)
	dec.KnownFields(true)

	var bf beaconFile

	var err = dec.Decode(&bf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if len(bf.Beacons) == 0 {
		return nil, errors.New("no beacons defined")
	}

	return bf.Beacons, nil
}

/*------------------------------------------------------------------
 *
 * Function:	EncodeBeacons
 *
 * Purpose:	Encode every beacon, in parallel.
 *
 * Returns:	Results in the same order as the input.
 *		The error names the first failing entry (1 based).
 *
 *------------------------------------------------------------------*/

func EncodeBeacons(beacons []Beacon) ([]Result, error) {
	var results = make([]Result, len(beacons))
	var errs = make([]error, len(beacons))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, b := range beacons {
		results[i].Beacon = b
		g.Go(func() error {
			errs[i] = EncodeInto(&results[i].Message, b.Callsign, b.Grid, b.Power)
			return errs[i]
		})
	}

	if g.Wait() == nil {
		return results, nil
	}

	// Wait reports whichever failure finished first; report the lowest index.
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("beacon %d (%s): %w", i+1, beacons[i], err)
		}
	}

	return nil, errors.New("beacon encoding failed")
}
