// Package mgrs converts between MGRS grid strings, UTM and UPS grid
// coordinates, and geodetic latitude/longitude on the WGS-84 ellipsoid.
//
// The grid tables and conversion structure follow the NGA GEOTRANS
// formulation. All functions are stateless and safe for unrestricted
// concurrent use; the lookup tables are immutable after initialisation.
package mgrs

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrParse is returned for malformed MGRS/UTM/UPS input: bad digit
	// grouping, invalid grid letters, or a zone outside its legal range.
	ErrParse = errors.New("malformed grid coordinate")

	// ErrRange is returned when numeric input falls outside the domain the
	// projection series is valid for.
	ErrRange = errors.New("grid value out of range")
)

// Hemisphere distinguishes the northern and southern halves of the grid.
type Hemisphere int

const (
	HemisphereSouth Hemisphere = iota
	HemisphereNorth
)

func (h Hemisphere) String() string {
	if h == HemisphereNorth {
		return "north"
	}
	return "south"
}

const (
	gridSquareSize = 100000.0
	rowPeriod      = 2000000.0 // northing metres spanned by one row-letter cycle
)

// latitudeBand holds the minimum northing and the northing offset for one
// MGRS latitude band.
type latitudeBand struct {
	minNorthing    float64
	northingOffset float64
}

// latitudeBands is indexed by bandIndex; rows run C through X skipping I and
// O. Southern bands (C-M) are expressed against the 10,000,000 m false
// northing.
var latitudeBands = [20]latitudeBand{
	{1100000.0, 0.0},       // C
	{2000000.0, 2000000.0}, // D
	{2800000.0, 2000000.0}, // E
	{3700000.0, 2000000.0}, // F
	{4600000.0, 4000000.0}, // G
	{5500000.0, 4000000.0}, // H
	{6400000.0, 6000000.0}, // J
	{7300000.0, 6000000.0}, // K
	{8200000.0, 8000000.0}, // L
	{9100000.0, 8000000.0}, // M
	{0.0, 0.0},             // N
	{800000.0, 0.0},        // P
	{1700000.0, 0.0},       // Q
	{2600000.0, 2000000.0}, // R
	{3500000.0, 2000000.0}, // S
	{4400000.0, 4000000.0}, // T
	{5300000.0, 4000000.0}, // U
	{6200000.0, 6000000.0}, // V
	{7000000.0, 6000000.0}, // W
	{7900000.0, 6000000.0}, // X
}

const bandLetters = "CDEFGHJKLMNPQRSTUVWX"

// Column letter sets for UTM zones, selected by (zone-1) mod 3, and the row
// letter cycle. I and O never appear in grid letters.
var columnSets = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}

const rowLetters = "ABCDEFGHJKLMNPQRSTUV"

// upsSector describes one UPS grid-zone designator: its hemisphere, the
// column letters and false easting for its half of the polar grid, and the
// row letters and false northing for its hemisphere.
type upsSector struct {
	hemisphere    Hemisphere
	columns       string
	rows          string
	falseEasting  float64
	falseNorthing float64
}

const (
	upsWestColumns = "JKLPQRSTUXYZ"
	upsEastColumns = "ABCFGHJKLPQR"
	upsNorthRows   = "ABCDEFGHJKLMNP"
	upsSouthRows   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// upsSectors is keyed by the UPS band letter.
var upsSectors = map[byte]upsSector{
	'A': {HemisphereSouth, upsWestColumns, upsSouthRows, 800000.0, 800000.0},
	'B': {HemisphereSouth, upsEastColumns, upsSouthRows, 2000000.0, 800000.0},
	'Y': {HemisphereNorth, upsWestColumns, upsNorthRows, 800000.0, 1300000.0},
	'Z': {HemisphereNorth, upsEastColumns, upsNorthRows, 2000000.0, 1300000.0},
}

// bandIndex maps a latitude band letter onto latitudeBands, or -1 when the
// letter is not a valid UTM band (C-X excluding I and O).
func bandIndex(letter byte) int {
	switch {
	case letter >= 'C' && letter <= 'H':
		return int(letter - 'C')
	case letter >= 'J' && letter <= 'N':
		return int(letter-'J') + 6
	case letter >= 'P' && letter <= 'X':
		return int(letter-'P') + 11
	}
	return -1
}

// patternOffset returns the row-letter northing offset for a UTM zone: even
// zones start their row cycle five letters (500 km) into the cycle.
func patternOffset(zone int) float64 {
	if zone%2 == 0 {
		return 500000.0
	}
	return 0.0
}

func isGridLetter(b byte) bool {
	return b >= 'A' && b <= 'Z' && b != 'I' && b != 'O'
}

// Break decomposes an MGRS string into its zone, grid-zone designator
// letters, and easting/northing within the 100 km square (metres, resolved
// to 1 m). Zone 0 indicates a UPS (polar) coordinate. No projection math is
// performed.
func Break(s string) (zone int, gzd string, easting, northing float64, err error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, "", 0, 0, fmt.Errorf("%w: empty string", ErrParse)
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 2 {
		return 0, "", 0, 0, fmt.Errorf("%w: zone %q has more than two digits", ErrParse, s[:i])
	}
	for k := 0; k < i; k++ {
		zone = zone*10 + int(s[k]-'0')
	}
	if i > 0 && (zone < 0 || zone > 60) {
		return 0, "", 0, 0, fmt.Errorf("%w: zone %d outside 0-60", ErrParse, zone)
	}

	if len(s)-i < 3 {
		return 0, "", 0, 0, fmt.Errorf("%w: missing grid-zone designator letters", ErrParse)
	}
	gzd = s[i : i+3]
	for k := 0; k < 3; k++ {
		if !isGridLetter(gzd[k]) {
			return 0, "", 0, 0, fmt.Errorf("%w: invalid grid letter %q", ErrParse, gzd[k])
		}
	}

	digits := s[i+3:]
	if len(digits) == 0 || len(digits)%2 != 0 || len(digits) > 10 {
		return 0, "", 0, 0, fmt.Errorf("%w: easting/northing digit groups must be equal length, 1-5 digits each", ErrParse)
	}
	for k := 0; k < len(digits); k++ {
		if digits[k] < '0' || digits[k] > '9' {
			return 0, "", 0, 0, fmt.Errorf("%w: non-digit %q in numeric group", ErrParse, digits[k])
		}
	}

	half := len(digits) / 2
	scale := math.Pow(10, float64(5-half))
	easting = float64(parseDigits(digits[:half])) * scale
	northing = float64(parseDigits(digits[half:])) * scale
	return zone, gzd, easting, northing, nil
}

func parseDigits(s string) int {
	v := 0
	for k := 0; k < len(s); k++ {
		v = v*10 + int(s[k]-'0')
	}
	return v
}

// ToUTM resolves an MGRS decomposition (non-polar, zone 1-60) to absolute
// UTM coordinates. The latitude band letter selects a base northing from the
// band table, resolving the 100 km row-letter ambiguity.
func ToUTM(zone int, gzd string, mgrsEasting, mgrsNorthing float64) (Hemisphere, float64, float64, error) {
	if zone < 1 || zone > 60 {
		return 0, 0, 0, fmt.Errorf("%w: zone %d outside 1-60", ErrParse, zone)
	}
	if len(gzd) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: grid-zone designator %q must be three letters", ErrParse, gzd)
	}
	if mgrsEasting < 0 || mgrsEasting >= gridSquareSize || mgrsNorthing < 0 || mgrsNorthing >= gridSquareSize {
		return 0, 0, 0, fmt.Errorf("%w: easting/northing must lie within the 100 km square", ErrRange)
	}

	band := bandIndex(gzd[0])
	if band < 0 {
		return 0, 0, 0, fmt.Errorf("%w: latitude band %q not in C-X", ErrParse, gzd[0])
	}

	colSet := columnSets[(zone-1)%3]
	col := strings.IndexByte(colSet, gzd[1])
	if col < 0 {
		return 0, 0, 0, fmt.Errorf("%w: column letter %q invalid for zone %d", ErrParse, gzd[1], zone)
	}
	row := strings.IndexByte(rowLetters, gzd[2])
	if row < 0 {
		return 0, 0, 0, fmt.Errorf("%w: row letter %q not in A-V", ErrParse, gzd[2])
	}

	gridEasting := float64(col+1) * gridSquareSize

	gridNorthing := float64(row)*gridSquareSize - patternOffset(zone)
	if gridNorthing < 0 {
		gridNorthing += rowPeriod
	}
	gridNorthing += latitudeBands[band].northingOffset
	if gridNorthing < latitudeBands[band].minNorthing {
		gridNorthing += rowPeriod
	}

	hemisphere := HemisphereNorth
	if gzd[0] < 'N' {
		hemisphere = HemisphereSouth
	}
	return hemisphere, gridEasting + mgrsEasting, gridNorthing + mgrsNorthing, nil
}

// ToUPS resolves a polar MGRS decomposition (zone 0, band letter A, B, Y or
// Z) to absolute UPS coordinates. The hemisphere follows from the band
// letter.
func ToUPS(gzd string, mgrsEasting, mgrsNorthing float64) (Hemisphere, float64, float64, error) {
	if len(gzd) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: grid-zone designator %q must be three letters", ErrParse, gzd)
	}
	if mgrsEasting < 0 || mgrsEasting >= gridSquareSize || mgrsNorthing < 0 || mgrsNorthing >= gridSquareSize {
		return 0, 0, 0, fmt.Errorf("%w: easting/northing must lie within the 100 km square", ErrRange)
	}

	sector, ok := upsSectors[gzd[0]]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: polar band %q not in A, B, Y, Z", ErrParse, gzd[0])
	}
	col := strings.IndexByte(sector.columns, gzd[1])
	if col < 0 {
		return 0, 0, 0, fmt.Errorf("%w: column letter %q invalid for band %q", ErrParse, gzd[1], gzd[0])
	}
	row := strings.IndexByte(sector.rows, gzd[2])
	if row < 0 {
		return 0, 0, 0, fmt.Errorf("%w: row letter %q invalid for band %q", ErrParse, gzd[2], gzd[0])
	}

	easting := sector.falseEasting + float64(col)*gridSquareSize + mgrsEasting
	northing := sector.falseNorthing + float64(row)*gridSquareSize + mgrsNorthing
	return sector.hemisphere, easting, northing, nil
}

// ToGeodetic converts an MGRS string to geodetic latitude and longitude in
// radians. Polar strings (zone 0) route through UPS, everything else through
// UTM; UTM results are valid for latitudes between 80 deg S and 84 deg N.
func ToGeodetic(s string) (lat, lon float64, err error) {
	zone, gzd, easting, northing, err := Break(s)
	if err != nil {
		return 0, 0, err
	}

	if zone == 0 {
		hemisphere, upsE, upsN, err := ToUPS(gzd, easting, northing)
		if err != nil {
			return 0, 0, err
		}
		return UPSToGeodetic(hemisphere, upsE, upsN)
	}

	hemisphere, utmE, utmN, err := ToUTM(zone, gzd, easting, northing)
	if err != nil {
		return 0, 0, err
	}
	return UTMToGeodetic(zone, hemisphere, utmE, utmN)
}

// FromGeodetic converts a geodetic position (radians) to an MGRS string at
// the requested precision: 1 to 5 digits per easting/northing group, i.e.
// 10 km down to 1 m. Latitudes poleward of 84 deg N / 80 deg S produce UPS
// strings.
func FromGeodetic(lat, lon float64, precision int) (string, error) {
	if precision < 1 || precision > 5 {
		return "", fmt.Errorf("%w: precision %d outside 1-5", ErrRange, precision)
	}
	if math.Abs(lat) > math.Pi/2 {
		return "", fmt.Errorf("%w: latitude %g rad", ErrRange, lat)
	}

	latDeg := lat * 180 / math.Pi
	if latDeg >= 84.0 || latDeg < -80.0 {
		return fromGeodeticUPS(lat, lon, precision)
	}
	return fromGeodeticUTM(lat, lon, precision)
}

func fromGeodeticUTM(lat, lon float64, precision int) (string, error) {
	zone, _, easting, northing, err := GeodeticToUTM(lat, lon)
	if err != nil {
		return "", err
	}

	latDeg := lat * 180 / math.Pi
	band := int(math.Floor((latDeg + 80.0) / 8.0))
	if band > 19 {
		band = 19 // X spans 72-84 deg
	}

	colSet := columnSets[(zone-1)%3]
	colIdx := int(easting/gridSquareSize) - 1
	if colIdx < 0 || colIdx >= len(colSet) {
		return "", fmt.Errorf("%w: easting %g outside zone", ErrRange, easting)
	}
	rowIdx := (int(math.Mod(northing, rowPeriod)/gridSquareSize) + int(patternOffset(zone)/gridSquareSize)) % len(rowLetters)

	return formatMgrs(zone, bandLetters[band], colSet[colIdx], rowLetters[rowIdx], easting, northing, precision), nil
}

func fromGeodeticUPS(lat, lon float64, precision int) (string, error) {
	hemisphere, easting, northing, err := GeodeticToUPS(lat, lon)
	if err != nil {
		return "", err
	}

	var band byte
	if hemisphere == HemisphereNorth {
		band = 'Y'
		if easting >= upsFalseEasting {
			band = 'Z'
		}
	} else {
		band = 'A'
		if easting >= upsFalseEasting {
			band = 'B'
		}
	}

	sector := upsSectors[band]
	colIdx := int((easting - sector.falseEasting) / gridSquareSize)
	rowIdx := int((northing - sector.falseNorthing) / gridSquareSize)
	if colIdx < 0 || colIdx >= len(sector.columns) || rowIdx < 0 || rowIdx >= len(sector.rows) {
		return "", fmt.Errorf("%w: position outside the UPS grid lettering", ErrRange)
	}

	return formatMgrs(0, band, sector.columns[colIdx], sector.rows[rowIdx], easting, northing, precision), nil
}

func formatMgrs(zone int, band, col, row byte, easting, northing float64, precision int) string {
	div := 1
	for i := 0; i < 5-precision; i++ {
		div *= 10
	}
	// Snap to the metre before splitting digits: a reconstructed coordinate a
	// few micrometres under an integer boundary must not lose a full metre.
	// Coarser precisions still drop trailing digits rather than round.
	e := (int(math.Round(easting)) % int(gridSquareSize)) / div
	n := (int(math.Round(northing)) % int(gridSquareSize)) / div

	var sb strings.Builder
	if zone > 0 {
		fmt.Fprintf(&sb, "%d", zone)
	}
	sb.WriteByte(band)
	sb.WriteByte(col)
	sb.WriteByte(row)
	fmt.Fprintf(&sb, "%0*d%0*d", precision, e, precision, n)
	return sb.String()
}
