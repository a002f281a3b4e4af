package wspr

/*------------------------------------------------------------------
 *
 * Name:	wsprgen
 *
 * Purpose:	Print the tone sequence for a WSPR beacon.
 *
 * Usage:	wsprgen [options] callsign grid power
 *		wsprgen [options] -b beacons.yaml
 *
 *		Output is 162 numbers, 0 thru 3, one per tone, in the
 *		order they are sent.  By default 9 lines of 18.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

type genOptions struct {
	format          Format
	batch           string
	timestampFormat string
}

func WsprGenMain() {
	var _format = pflag.StringP("format", "f", "rows", "Output format: rows (9 x 18), list (comma separated) or compact.")
	var _batch = pflag.StringP("batch", "b", "", "Encode every beacon in this YAML file instead of the command line.")
	var _timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede output with 'strftime' format time stamp.")
	var _verbose = pflag.BoolP("verbose", "v", false, "Verbose. Show the packed fields and where the grid is.")
	var version = pflag.Bool("version", false, "Print version and exit.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate WSPR Type 1 tone sequences.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] callsign grid power\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [options] -b beacons.yaml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "The grid is the 4 character square, e.g. FN42 rather than FN42MA.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:\n")
		fmt.Fprintf(os.Stderr, "\t%s K1ABC FN42 37\n", os.Args[0])
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	var opts = genOptions{
		batch:           *_batch,
		timestampFormat: *_timestampFormat,
	}

	if *_verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var err error

	opts.format, err = ParseFormat(*_format)
	if err == nil {
		err = wsprGen(os.Stdout, opts, pflag.Args())
	}

	if err != nil {
		logger.Error(err)
		if errors.Is(err, errUsage) {
			pflag.Usage()
		}
		os.Exit(1)
	}
} /* end main */

var errUsage = errors.New("expected exactly three arguments: callsign grid power")

func wsprGen(w io.Writer, opts genOptions, args []string) error {
	var beacons []Beacon

	if opts.batch != "" {
		if len(args) != 0 {
			return fmt.Errorf("unexpected arguments with --batch: %v", args)
		}

		var err error

		beacons, err = LoadBeacons(opts.batch)
		if err != nil {
			return err
		}
	} else {
		if len(args) != 3 {
			return errUsage
		}

		var power, err = strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w %q: not a whole number of dBm", ErrInvalidPower, args[2])
		}

		beacons = []Beacon{{Callsign: args[0], Grid: args[1], Power: power}}
	}

	for _, b := range beacons {
		describeBeacon(b)
	}

	var results, err = EncodeBeacons(beacons)
	if err != nil {
		return err
	}

	if opts.timestampFormat != "" {
		var formattedTime, tsErr = strftime.Format(opts.timestampFormat, time.Now())
		if tsErr != nil {
			return fmt.Errorf("timestamp format %q: %w", opts.timestampFormat, tsErr)
		}
		fmt.Fprintf(w, "%s\n", formattedTime)
	}

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintf(w, "\n")
			}
			fmt.Fprintf(w, "# %s\n", r.Beacon)
		}
		fmt.Fprint(w, r.Message.Render(opts.format))
	}

	return nil
}

// describeBeacon logs what is about to be sent.  Problems with the inputs
// are left for the encoder to report.
func describeBeacon(b Beacon) {
	if !IsStandardPower(b.Power) {
		logger.Warn("Power is not a standard WSPR level, receivers will show something else", "callsign", b.Callsign, "dBm", b.Power, "standard", StandardPowers())
	}

	var call, err = CanonicalCallsign(b.Callsign)
	if err != nil {
		return
	}

	var f, packErr = Pack(b.Callsign, b.Grid, b.Power)
	if packErr != nil {
		return
	}

	logger.Debug("Packed fields", "callsign", strconv.Quote(call), "n", f.Callsign, "grid", f.Grid, "power", f.Power)

	var loc, locErr = GridLocation(b.Grid)
	if locErr == nil {
		logger.Debug("Grid square center", "location", loc.String())
	}
}
