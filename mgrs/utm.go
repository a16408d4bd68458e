package mgrs

import (
	"fmt"
	"math"
)

// WGS-84 and UTM projection constants.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1.0 / 298.257223563

	utmScaleFactor   = 0.9996
	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0 // southern hemisphere only

	// UTM is defined between 80 deg S and 84 deg N; conversions resolving
	// slightly past a band edge are tolerated up to half a degree.
	utmMinLatDeg = -80.5
	utmMaxLatDeg = 84.5
)

var (
	eccSq      = flattening * (2.0 - flattening)
	eccPrimeSq = eccSq / (1.0 - eccSq)
)

// centralMeridian returns a UTM zone's central meridian in radians.
func centralMeridian(zone int) float64 {
	return float64((zone-1)*6-180+3) * math.Pi / 180
}

// utmZone selects the UTM zone for a position, including the grid exceptions
// around Norway (32V) and Svalbard (31X/33X/35X/37X).
func utmZone(latDeg, lonDeg float64) int {
	zone := int((lonDeg+180.0)/6.0) + 1
	if zone > 60 {
		zone = 1 // lon == +180 wraps into zone 1
	}

	if latDeg >= 56.0 && latDeg < 64.0 && lonDeg >= 3.0 && lonDeg < 12.0 {
		return 32
	}
	if latDeg >= 72.0 && latDeg < 84.0 {
		switch {
		case lonDeg >= 0.0 && lonDeg < 9.0:
			return 31
		case lonDeg >= 9.0 && lonDeg < 21.0:
			return 33
		case lonDeg >= 21.0 && lonDeg < 33.0:
			return 35
		case lonDeg >= 33.0 && lonDeg < 42.0:
			return 37
		}
	}
	return zone
}

// meridianArc returns the meridional arc length from the equator to the
// given latitude (radians) on WGS-84.
func meridianArc(lat float64) float64 {
	e2 := eccSq
	e4 := e2 * e2
	e6 := e4 * e2
	return semiMajorAxis * ((1-e2/4-3*e4/64-5*e6/256)*lat -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*lat) +
		(15*e4/256+45*e6/1024)*math.Sin(4*lat) -
		(35*e6/3072)*math.Sin(6*lat))
}

// GeodeticToUTM projects a geodetic position (radians) into UTM. The input
// must lie between 80 deg S and 84 deg N; polar positions belong to UPS.
func GeodeticToUTM(lat, lon float64) (zone int, hemisphere Hemisphere, easting, northing float64, err error) {
	latDeg := lat * 180 / math.Pi
	lonDeg := normalizeLonDeg(lon * 180 / math.Pi)
	if latDeg < -80.0 || latDeg > 84.0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: latitude %.4f deg outside UTM coverage", ErrRange, latDeg)
	}

	zone = utmZone(latDeg, lonDeg)
	lon0 := centralMeridian(zone)

	sinLat, cosLat := math.Sincos(lat)
	tanLat := sinLat / cosLat

	n := semiMajorAxis / math.Sqrt(1-eccSq*sinLat*sinLat)
	t := tanLat * tanLat
	c := eccPrimeSq * cosLat * cosLat
	a := cosLat * normalizeLonRad(lon-lon0)

	m := meridianArc(lat)

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	easting = utmScaleFactor*n*(a+(1-t+c)*a3/6+
		(5-18*t+t*t+72*c-58*eccPrimeSq)*a5/120) + utmFalseEasting
	northing = utmScaleFactor * (m + n*tanLat*(a2/2+
		(5-t+9*c+4*c*c)*a4/24+
		(61-58*t+t*t+600*c-330*eccPrimeSq)*a6/720))

	hemisphere = HemisphereNorth
	if lat < 0 {
		hemisphere = HemisphereSouth
		northing += utmFalseNorthing
	}
	return zone, hemisphere, easting, northing, nil
}

// UTMToGeodetic converts a UTM coordinate to geodetic latitude/longitude in
// radians via the inverse Transverse Mercator series. Inputs resolving to
// latitudes outside UTM coverage are reported as an error, never clamped.
func UTMToGeodetic(zone int, hemisphere Hemisphere, easting, northing float64) (lat, lon float64, err error) {
	if zone < 1 || zone > 60 {
		return 0, 0, fmt.Errorf("%w: zone %d outside 1-60", ErrRange, zone)
	}
	if easting < 100000.0 || easting > 900000.0 {
		return 0, 0, fmt.Errorf("%w: easting %.1f outside 100000-900000", ErrRange, easting)
	}
	if northing < 0 || northing > 10000000.0 {
		return 0, 0, fmt.Errorf("%w: northing %.1f outside 0-10000000", ErrRange, northing)
	}

	x := easting - utmFalseEasting
	y := northing
	if hemisphere == HemisphereSouth {
		y -= utmFalseNorthing
	}

	e2 := eccSq
	e4 := e2 * e2
	e6 := e4 * e2
	m := y / utmScaleFactor
	mu := m / (semiMajorAxis * (1 - e2/4 - 3*e4/64 - 5*e6/256))

	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	e1Sq := e1 * e1
	e1Cu := e1Sq * e1
	e1Qu := e1Cu * e1

	// Footpoint latitude.
	phi1 := mu + (3*e1/2-27*e1Cu/32)*math.Sin(2*mu) +
		(21*e1Sq/16-55*e1Qu/32)*math.Sin(4*mu) +
		(151*e1Cu/96)*math.Sin(6*mu) +
		(1097*e1Qu/512)*math.Sin(8*mu)

	sinPhi1, cosPhi1 := math.Sincos(phi1)
	tanPhi1 := sinPhi1 / cosPhi1

	den := 1 - e2*sinPhi1*sinPhi1
	n1 := semiMajorAxis / math.Sqrt(den)
	r1 := semiMajorAxis * (1 - e2) / math.Pow(den, 1.5)

	t1 := tanPhi1 * tanPhi1
	c1 := eccPrimeSq * cosPhi1 * cosPhi1
	d := x / (n1 * utmScaleFactor)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	lat = phi1 - (n1*tanPhi1/r1)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*eccPrimeSq)*d4/24+
		(61+90*t1+298*c1+45*t1*t1-252*eccPrimeSq-3*c1*c1)*d6/720)
	lon = centralMeridian(zone) + (d-
		(1+2*t1+c1)*d3/6+
		(5-2*c1+28*t1-3*c1*c1+8*eccPrimeSq+24*t1*t1)*d5/120)/cosPhi1

	latDeg := lat * 180 / math.Pi
	if latDeg < utmMinLatDeg || latDeg > utmMaxLatDeg {
		return 0, 0, fmt.Errorf("%w: coordinate resolves to latitude %.4f deg, outside UTM coverage", ErrRange, latDeg)
	}
	return lat, normalizeLonRad(lon), nil
}

func normalizeLonRad(lon float64) float64 {
	lon = math.Mod(lon, 2*math.Pi)
	if lon > math.Pi {
		lon -= 2 * math.Pi
	} else if lon <= -math.Pi {
		lon += 2 * math.Pi
	}
	return lon
}

func normalizeLonDeg(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon <= -180 {
		lon += 360
	}
	return lon
}
