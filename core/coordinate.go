package core

import "math"

// WGS84 ellipsoid parameters.
const (
	WGS84SemiMajorAxis = 6378137.0
	WGS84Flattening    = 1.0 / 298.257223563

	// SphereRadius is the mean Earth radius used by the perfect-sphere model
	// (metres).
	SphereRadius = 6371000.0
)

// Derived WGS84 quantities.
var (
	wgs84SemiMinorAxis = WGS84SemiMajorAxis * (1.0 - WGS84Flattening)
	wgs84EccSq         = WGS84Flattening * (2.0 - WGS84Flattening)
)

// EarthModel selects the Earth approximation used by conversions and
// relative-geometry calculations.
type EarthModel int

const (
	// WGS84 is the full WGS-84 ellipsoid.
	WGS84 EarthModel = iota
	// FlatEarth approximates the Earth as a plane tangent at the reference
	// origin, with scale taken from the WGS-84 radii of curvature there.
	FlatEarth
	// PerfectSphere treats the Earth as a sphere of radius SphereRadius.
	// Operations that need a local-level or ellipsoidal normal reject it.
	PerfectSphere
	// TangentPlaneWGS84 performs calculations in a local tangent plane
	// derived from the WGS-84 ellipsoid at the reference origin.
	TangentPlaneWGS84
)

func (m EarthModel) String() string {
	switch m {
	case WGS84:
		return "WGS84"
	case FlatEarth:
		return "FlatEarth"
	case PerfectSphere:
		return "PerfectSphere"
	case TangentPlaneWGS84:
		return "TangentPlaneWGS84"
	default:
		return "unknown"
	}
}

// supportsLocalLevel reports whether the model defines a local-level frame.
// The perfect sphere has no ellipsoidal normal, so "ground", "down" and
// orientation-relative quantities are undefined under it.
func (m EarthModel) supportsLocalLevel() bool {
	return m != PerfectSphere
}

// Frame identifies a coordinate frame a Coordinate can be expressed in.
type Frame int

const (
	// FrameGeodetic is latitude/longitude/altitude (radians, radians, metres).
	FrameGeodetic Frame = iota
	// FrameECEF is Earth-centred Earth-fixed Cartesian metres.
	FrameECEF
	// FrameLocalENU is an east-north-up tangent plane anchored at the
	// converter's reference origin, metres.
	FrameLocalENU
	// FrameFlatEarth is the flat-Earth plane anchored at the reference
	// origin: x east, y north, z up, metres.
	FrameFlatEarth
)

func (f Frame) String() string {
	switch f {
	case FrameGeodetic:
		return "geodetic"
	case FrameECEF:
		return "ecef"
	case FrameLocalENU:
		return "local-enu"
	case FrameFlatEarth:
		return "flat-earth"
	default:
		return "unknown"
	}
}

// Vec3 is an ordered triple of doubles. Depending on context it holds either
// Cartesian metres or lat/lon/alt components.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns a unit-length copy of v, or the zero vector when v has
// zero length.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return v.Scale(1 / n)
}

// Position is a geodetic position: latitude and longitude in radians,
// altitude in metres above the ellipsoid.
type Position struct {
	Lat float64
	Lon float64
	Alt float64
}

// Orientation holds yaw/pitch/roll Euler angles in radians. Yaw is measured
// clockwise from true north.
type Orientation struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// State is a platform state: a geodetic position, a body orientation, and a
// velocity vector expressed in the local east-north-up frame at the position
// (metres per second).
type State struct {
	Position    Position
	Orientation Orientation
	Velocity    Vec3
}

// Coordinate is a position tagged with the frame it is expressed in. For
// FrameGeodetic the vector holds (lat, lon, alt); Cartesian frames hold
// metres.
type Coordinate struct {
	Frame Frame
	Vec   Vec3
}

// NewGeodetic builds a geodetic Coordinate from lat/lon (radians) and
// altitude (metres).
func NewGeodetic(lat, lon, alt float64) Coordinate {
	return Coordinate{Frame: FrameGeodetic, Vec: Vec3{X: lat, Y: lon, Z: alt}}
}

// Position interprets a geodetic Coordinate's vector as a Position.
func (c Coordinate) Position() Position {
	return Position{Lat: c.Vec.X, Lon: c.Vec.Y, Alt: c.Vec.Z}
}

// NormalizeLon wraps a longitude into (-pi, pi].
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon, 2*math.Pi)
	if lon > math.Pi {
		lon -= 2 * math.Pi
	} else if lon <= -math.Pi {
		lon += 2 * math.Pi
	}
	return lon
}

// NormalizeAzimuth wraps an angle into [0, 2*pi).
func NormalizeAzimuth(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
