package wspr

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

func D2R(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// Location describes the center of a grid square.
type Location struct {
	Grid string
	Lat  float64
	Lon  float64

	// Empty when the conversion fails, e.g. MGRS near the poles.
	UTM  string
	MGRS string
}

/*------------------------------------------------------------------
 *
 * Function:	GridLocation
 *
 * Purpose:	Describe where a Maidenhead locator is, for humans.
 *
 * Inputs:	grid	- 2 to 12 character locator.
 *
 * Returns:	Center of the square in latitude / longitude, UTM and
 *		MGRS (1 km precision, about right for a 6 character grid).
 *
 *------------------------------------------------------------------*/

func GridLocation(grid string) (Location, error) {
	var lat, lon, err = GridToLatLon(grid)
	if err != nil {
		return Location{}, err
	}

	var loc = Location{Grid: grid, Lat: lat, Lon: lon}

	var latlng = s2.LatLng{
		Lat: s1.Angle(D2R(lat)),
		Lng: s1.Angle(D2R(lon)),
	}

	var utmCoord, utmErr = coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if utmErr == nil {
		loc.UTM = fmt.Sprintf("%d%c %.0fE %.0fN", utmCoord.Zone, HemisphereToRune(utmCoord.Hemisphere), utmCoord.Easting, utmCoord.Northing)
	} else {
		logger.Debug("UTM conversion failed", "grid", grid, "err", utmErr)
	}

	var mgrsCoord, mgrsErr = coordconv.DefaultMGRSConverter.ConvertFromGeodetic(latlng, 2)
	if mgrsErr == nil {
		loc.MGRS = fmt.Sprintf("%s", mgrsCoord)
	} else {
		logger.Debug("MGRS conversion failed", "grid", grid, "err", mgrsErr)
	}

	return loc, nil
}

func (l Location) String() string {
	var s = fmt.Sprintf("%s: %.4f %.4f", l.Grid, l.Lat, l.Lon)
	if l.UTM != "" {
		s += ", UTM " + l.UTM
	}
	if l.MGRS != "" {
		s += ", MGRS " + l.MGRS
	}

	return s
}
