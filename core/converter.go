package core

import (
	"fmt"
	"math"
)

// Converter transforms coordinates between geodetic, ECEF and local
// tangent-plane frames relative to a stored reference origin.
//
// A Converter is not safe for concurrent mutation of the reference origin.
// Once the origin is set, concurrent read-only Convert calls are safe.
type Converter struct {
	model  EarthModel
	origin Position

	// Precomputed at SetReferenceOrigin.
	originECEF Vec3
	// Rows of the ECEF->ENU rotation matrix at the origin.
	east, north, up Vec3
	// Radii of curvature at the origin, used by the flat-Earth plane.
	radiusMeridian float64
	radiusNormal   float64
}

// NewConverter builds a Converter for the given Earth model with the default
// reference origin (0, 0, 0).
func NewConverter(model EarthModel) *Converter {
	c := &Converter{model: model}
	c.SetReferenceOrigin(0, 0, 0)
	return c
}

// Model returns the Earth model the converter was built for.
func (c *Converter) Model() EarthModel { return c.model }

// ReferenceOrigin returns the current reference origin.
func (c *Converter) ReferenceOrigin() Position { return c.origin }

// SetReferenceOrigin sets or resets the reference origin (radians, radians,
// metres) and recomputes the rotation and curvature constants derived from
// it. Subsequent conversions use the new origin.
func (c *Converter) SetReferenceOrigin(lat, lon, alt float64) {
	lon = NormalizeLon(lon)
	c.origin = Position{Lat: lat, Lon: lon, Alt: alt}
	c.originECEF = geodeticToECEF(c.origin, c.model)

	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	c.east = Vec3{X: -sinLon, Y: cosLon, Z: 0}
	c.north = Vec3{X: -sinLat * cosLon, Y: -sinLat * sinLon, Z: cosLat}
	c.up = Vec3{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}

	sinSq := sinLat * sinLat
	den := 1.0 - wgs84EccSq*sinSq
	c.radiusNormal = WGS84SemiMajorAxis / math.Sqrt(den)
	c.radiusMeridian = WGS84SemiMajorAxis * (1.0 - wgs84EccSq) / math.Pow(den, 1.5)
}

// Convert transforms a coordinate into the requested frame relative to the
// stored origin. Converting to the coordinate's own frame is a no-op. Frame
// pairs the active Earth model does not define fail with ErrInvalidFrame.
func (c *Converter) Convert(in Coordinate, to Frame) (Coordinate, error) {
	if in.Frame == to {
		return in, nil
	}
	if err := c.checkFrame(in.Frame); err != nil {
		return Coordinate{}, err
	}
	if err := c.checkFrame(to); err != nil {
		return Coordinate{}, err
	}

	// Route through geodetic as the common interchange frame.
	geo, err := c.toGeodetic(in)
	if err != nil {
		return Coordinate{}, err
	}
	return c.fromGeodetic(geo, to)
}

// checkFrame validates that the frame is defined under the active model.
func (c *Converter) checkFrame(f Frame) error {
	ok := false
	switch c.model {
	case WGS84:
		ok = f == FrameGeodetic || f == FrameECEF || f == FrameLocalENU
	case TangentPlaneWGS84:
		ok = f == FrameGeodetic || f == FrameECEF || f == FrameLocalENU
	case FlatEarth:
		ok = f == FrameGeodetic || f == FrameFlatEarth
	case PerfectSphere:
		ok = f == FrameGeodetic || f == FrameECEF
	}
	if !ok {
		return fmt.Errorf("%w: frame %s under model %s", ErrInvalidFrame, f, c.model)
	}
	return nil
}

func (c *Converter) toGeodetic(in Coordinate) (Position, error) {
	switch in.Frame {
	case FrameGeodetic:
		p := in.Position()
		if math.Abs(p.Lat) > math.Pi/2 {
			return Position{}, fmt.Errorf("%w: latitude %g rad", ErrRange, p.Lat)
		}
		p.Lon = NormalizeLon(p.Lon)
		return p, nil
	case FrameECEF:
		return ecefToGeodetic(in.Vec, c.model), nil
	case FrameLocalENU:
		ecef := c.originECEF.
			Add(c.east.Scale(in.Vec.X)).
			Add(c.north.Scale(in.Vec.Y)).
			Add(c.up.Scale(in.Vec.Z))
		return ecefToGeodetic(ecef, c.model), nil
	case FrameFlatEarth:
		lat := c.origin.Lat + in.Vec.Y/c.radiusMeridian
		lon := c.origin.Lon
		if cosLat := math.Cos(c.origin.Lat); cosLat != 0 {
			lon += in.Vec.X / (c.radiusNormal * cosLat)
		}
		return Position{Lat: lat, Lon: NormalizeLon(lon), Alt: c.origin.Alt + in.Vec.Z}, nil
	}
	return Position{}, fmt.Errorf("%w: frame %s", ErrInvalidFrame, in.Frame)
}

func (c *Converter) fromGeodetic(p Position, to Frame) (Coordinate, error) {
	switch to {
	case FrameGeodetic:
		return NewGeodetic(p.Lat, p.Lon, p.Alt), nil
	case FrameECEF:
		return Coordinate{Frame: FrameECEF, Vec: geodeticToECEF(p, c.model)}, nil
	case FrameLocalENU:
		d := geodeticToECEF(p, c.model).Sub(c.originECEF)
		enu := Vec3{X: c.east.Dot(d), Y: c.north.Dot(d), Z: c.up.Dot(d)}
		return Coordinate{Frame: FrameLocalENU, Vec: enu}, nil
	case FrameFlatEarth:
		dLat := p.Lat - c.origin.Lat
		dLon := NormalizeLon(p.Lon - c.origin.Lon)
		v := Vec3{
			X: dLon * c.radiusNormal * math.Cos(c.origin.Lat),
			Y: dLat * c.radiusMeridian,
			Z: p.Alt - c.origin.Alt,
		}
		return Coordinate{Frame: FrameFlatEarth, Vec: v}, nil
	}
	return Coordinate{}, fmt.Errorf("%w: frame %s", ErrInvalidFrame, to)
}

// GeodeticToECEF converts a geodetic position to Earth-centred Earth-fixed
// Cartesian metres on the WGS-84 ellipsoid.
func GeodeticToECEF(p Position) Vec3 {
	return geodeticToECEF(p, WGS84)
}

// ECEFToGeodetic converts ECEF Cartesian metres to a geodetic position on the
// WGS-84 ellipsoid.
func ECEFToGeodetic(v Vec3) Position {
	return ecefToGeodetic(v, WGS84)
}

// geodeticToECEF converts a geodetic position to Earth-centred Earth-fixed
// Cartesian metres under the given model. The sphere model uses SphereRadius;
// every other model uses the WGS-84 ellipsoid.
func geodeticToECEF(p Position, model EarthModel) Vec3 {
	sinLat, cosLat := math.Sincos(p.Lat)
	sinLon, cosLon := math.Sincos(p.Lon)

	if model == PerfectSphere {
		r := SphereRadius + p.Alt
		return Vec3{
			X: r * cosLat * cosLon,
			Y: r * cosLat * sinLon,
			Z: r * sinLat,
		}
	}

	n := WGS84SemiMajorAxis / math.Sqrt(1.0-wgs84EccSq*sinLat*sinLat)
	return Vec3{
		X: (n + p.Alt) * cosLat * cosLon,
		Y: (n + p.Alt) * cosLat * sinLon,
		Z: (n*(1.0-wgs84EccSq) + p.Alt) * sinLat,
	}
}

// ecefToGeodetic converts ECEF metres to a geodetic position. The ellipsoid
// branch uses Bowring's iteration, which converges to sub-millimetre
// precision in a few rounds for terrestrial points.
func ecefToGeodetic(v Vec3, model EarthModel) Position {
	if model == PerfectSphere {
		r := v.Norm()
		if r == 0 {
			return Position{Alt: -SphereRadius}
		}
		return Position{
			Lat: math.Asin(clampUnit(v.Z / r)),
			Lon: math.Atan2(v.Y, v.X),
			Alt: r - SphereRadius,
		}
	}

	lon := math.Atan2(v.Y, v.X)
	p := math.Hypot(v.X, v.Y)

	if p == 0 {
		// On the polar axis.
		lat := math.Pi / 2
		if v.Z < 0 {
			lat = -lat
		}
		return Position{Lat: lat, Lon: 0, Alt: math.Abs(v.Z) - wgs84SemiMinorAxis}
	}

	a, b := WGS84SemiMajorAxis, wgs84SemiMinorAxis
	ePrimeSq := (a*a - b*b) / (b * b)

	beta := math.Atan2(v.Z*a, p*b)
	lat := math.Atan2(
		v.Z+ePrimeSq*b*math.Pow(math.Sin(beta), 3),
		p-wgs84EccSq*a*math.Pow(math.Cos(beta), 3),
	)
	for i := 0; i < 5; i++ {
		betaNext := math.Atan2((1.0-WGS84Flattening)*math.Sin(lat), math.Cos(lat))
		latNext := math.Atan2(
			v.Z+ePrimeSq*b*math.Pow(math.Sin(betaNext), 3),
			p-wgs84EccSq*a*math.Pow(math.Cos(betaNext), 3),
		)
		if math.Abs(latNext-lat) < 1e-14 {
			lat = latNext
			break
		}
		lat = latNext
	}

	sinLat, cosLat := math.Sincos(lat)
	n := a / math.Sqrt(1.0-wgs84EccSq*sinLat*sinLat)
	var alt float64
	if math.Abs(cosLat) > 1e-10 {
		alt = p/cosLat - n
	} else {
		alt = v.Z/sinLat - n*(1.0-wgs84EccSq)
	}
	return Position{Lat: lat, Lon: lon, Alt: alt}
}
