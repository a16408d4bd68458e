package mgrs

import (
	"fmt"
	"math"
)

// UPS (polar stereographic) constants.
const (
	upsScaleFactor   = 0.994
	upsFalseEasting  = 2000000.0
	upsFalseNorthing = 2000000.0

	// UPS covers the polar caps; equatorward conversions degrade quickly.
	upsNorthBoundaryDeg = 83.5
	upsSouthBoundaryDeg = -79.5
)

// ecc is the first eccentricity of the WGS-84 ellipsoid.
var ecc = math.Sqrt(eccSq)

// psConstant is sqrt((1+e)^(1+e) * (1-e)^(1-e)), the polar stereographic
// scaling constant.
var psConstant = math.Sqrt(math.Pow(1+ecc, 1+ecc) * math.Pow(1-ecc, 1-ecc))

// GeodeticToUPS projects a geodetic position (radians) into UPS. The
// latitude must be poleward of 83.5 deg N or 79.5 deg S.
func GeodeticToUPS(lat, lon float64) (hemisphere Hemisphere, easting, northing float64, err error) {
	latDeg := lat * 180 / math.Pi
	switch {
	case latDeg >= upsNorthBoundaryDeg:
		hemisphere = HemisphereNorth
	case latDeg <= upsSouthBoundaryDeg:
		hemisphere = HemisphereSouth
	default:
		return 0, 0, 0, fmt.Errorf("%w: latitude %.4f deg outside UPS coverage", ErrRange, latDeg)
	}

	phi := lat
	lambda := normalizeLonRad(lon)
	if hemisphere == HemisphereSouth {
		phi = -phi
	}

	sinPhi := math.Sin(phi)
	t := math.Tan(math.Pi/4-phi/2) *
		math.Pow((1+ecc*sinPhi)/(1-ecc*sinPhi), ecc/2)
	rho := 2 * semiMajorAxis * upsScaleFactor * t / psConstant

	easting = upsFalseEasting + rho*math.Sin(lambda)
	if hemisphere == HemisphereNorth {
		northing = upsFalseNorthing - rho*math.Cos(lambda)
	} else {
		northing = upsFalseNorthing + rho*math.Cos(lambda)
	}
	return hemisphere, easting, northing, nil
}

// UPSToGeodetic converts a UPS coordinate to geodetic latitude/longitude in
// radians via the inverse polar stereographic projection. It is intended for
// grid coordinates poleward of 80 deg S / 84 deg N; positions closer to the
// equator lose latitude accuracy.
func UPSToGeodetic(hemisphere Hemisphere, easting, northing float64) (lat, lon float64, err error) {
	if easting < 0 || easting > 4000000.0 {
		return 0, 0, fmt.Errorf("%w: easting %.1f outside 0-4000000", ErrRange, easting)
	}
	if northing < 0 || northing > 4000000.0 {
		return 0, 0, fmt.Errorf("%w: northing %.1f outside 0-4000000", ErrRange, northing)
	}

	dx := easting - upsFalseEasting
	dy := northing - upsFalseNorthing
	rho := math.Hypot(dx, dy)

	if rho == 0 {
		lat = math.Pi / 2
		if hemisphere == HemisphereSouth {
			lat = -lat
		}
		return lat, 0, nil
	}

	t := rho * psConstant / (2 * semiMajorAxis * upsScaleFactor)
	chi := math.Pi/2 - 2*math.Atan(t)

	// Conformal to geodetic latitude series.
	e2 := eccSq
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e6 * e2
	phi := chi +
		(e2/2+5*e4/24+e6/12+13*e8/360)*math.Sin(2*chi) +
		(7*e4/48+29*e6/240+811*e8/11520)*math.Sin(4*chi) +
		(7*e6/120+81*e8/1120)*math.Sin(6*chi) +
		(4279*e8/161280)*math.Sin(8*chi)

	if hemisphere == HemisphereNorth {
		lat = phi
		lon = math.Atan2(dx, -dy)
	} else {
		lat = -phi
		lon = math.Atan2(dx, dy)
	}
	return lat, normalizeLonRad(lon), nil
}
