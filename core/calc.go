package core

import (
	"fmt"
	"math"
)

// The functions in this file compute relative and absolute geometry between
// two platforms. Positions are geodetic (radians, radians, metres) and
// velocities are local east-north-up metres per second.
//
// Under WGS84 and PerfectSphere the local frame is anchored at the `from`
// position. Under FlatEarth and TangentPlaneWGS84 the geometry is evaluated
// in the converter's local frame, so those models require a converter with a
// reference origin near the participants.
//
// Operations that depend on a local-level ("down") direction reject the
// perfect-sphere model with ErrModelUnsupported: without an ellipsoidal
// normal there is no consistent definition of ground or down-range.

func validatePosition(p Position) error {
	if math.Abs(p.Lat) > math.Pi/2 {
		return fmt.Errorf("%w: latitude %g rad", ErrRange, p.Lat)
	}
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsNaN(p.Alt) {
		return fmt.Errorf("%w: position contains NaN", ErrRange)
	}
	return nil
}

func requireLocalLevel(model EarthModel, op string) error {
	if !model.supportsLocalLevel() {
		return fmt.Errorf("%w: %s under %s", ErrModelUnsupported, op, model)
	}
	return nil
}

// localOffset returns the east-north-up offset of `to` relative to `from`
// under the given model. WGS84 and PerfectSphere anchor the tangent frame at
// `from`; FlatEarth and TangentPlaneWGS84 use the converter's frame.
func localOffset(from, to Position, model EarthModel, conv *Converter) (Vec3, error) {
	if err := validatePosition(from); err != nil {
		return Vec3{}, err
	}
	if err := validatePosition(to); err != nil {
		return Vec3{}, err
	}

	switch model {
	case WGS84, PerfectSphere:
		return enuOffsetAt(from, to, model), nil
	case TangentPlaneWGS84:
		return converterOffset(from, to, conv, FrameLocalENU)
	case FlatEarth:
		return converterOffset(from, to, conv, FrameFlatEarth)
	}
	return Vec3{}, fmt.Errorf("%w: model %d", ErrModelUnsupported, model)
}

// enuOffsetAt computes the ENU vector from `from` to `to` in the tangent
// frame anchored at `from`.
func enuOffsetAt(from, to Position, model EarthModel) Vec3 {
	d := geodeticToECEF(to, model).Sub(geodeticToECEF(from, model))

	sinLat, cosLat := math.Sincos(from.Lat)
	sinLon, cosLon := math.Sincos(from.Lon)
	east := Vec3{X: -sinLon, Y: cosLon, Z: 0}
	north := Vec3{X: -sinLat * cosLon, Y: -sinLat * sinLon, Z: cosLat}
	up := Vec3{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}

	return Vec3{X: east.Dot(d), Y: north.Dot(d), Z: up.Dot(d)}
}

func converterOffset(from, to Position, conv *Converter, frame Frame) (Vec3, error) {
	if conv == nil {
		return Vec3{}, fmt.Errorf("%w: local-frame model requires a converter", ErrInvalidFrame)
	}
	a, err := conv.fromGeodetic(from, frame)
	if err != nil {
		return Vec3{}, err
	}
	b, err := conv.fromGeodetic(to, frame)
	if err != nil {
		return Vec3{}, err
	}
	return b.Vec.Sub(a.Vec), nil
}

// CalculateSlant returns the straight-line 3-D distance in metres between
// the two positions. Valid under every Earth model.
func CalculateSlant(from, to Position, model EarthModel, conv *Converter) (float64, error) {
	off, err := localOffset(from, to, model, conv)
	if err != nil {
		return 0, err
	}
	return off.Norm(), nil
}

// CalculateAbsAzEl returns the true-north azimuth [0, 2*pi), the elevation
// above local horizontal [-pi/2, pi/2], and the composite (total angular
// offset from level north, [0, pi]) from `from` to `to`. Valid under every
// Earth model.
func CalculateAbsAzEl(from, to Position, model EarthModel, conv *Converter) (azimuth, elevation, composite float64, err error) {
	off, err := localOffset(from, to, model, conv)
	if err != nil {
		return 0, 0, 0, err
	}
	return anglesFromForward(off.Y, off.X, off.Z)
}

// CalculateRelAzEl returns azimuth, elevation, and composite angle of `to`
// relative to `from`'s body orientation. Rejected under the perfect sphere.
func CalculateRelAzEl(from State, to Position, model EarthModel, conv *Converter) (azimuth, elevation, composite float64, err error) {
	if err := requireLocalLevel(model, "relative az/el"); err != nil {
		return 0, 0, 0, err
	}
	off, err := localOffset(from.Position, to, model, conv)
	if err != nil {
		return 0, 0, 0, err
	}

	// North-east-down line of sight, rotated into the body frame by the
	// aerospace yaw/pitch/roll sequence.
	d := Vec3{X: off.Y, Y: off.X, Z: -off.Z}
	fwd, right, down := bodyAxes(from.Orientation)
	return anglesFromForward(d.Dot(fwd), d.Dot(right), -d.Dot(down))
}

// anglesFromForward derives azimuth/elevation/composite from forward,
// rightward, and upward line-of-sight components.
func anglesFromForward(fwd, right, up float64) (azimuth, elevation, composite float64, err error) {
	if fwd == 0 && right == 0 && up == 0 {
		return 0, 0, 0, nil
	}
	azimuth = NormalizeAzimuth(math.Atan2(right, fwd))
	elevation = math.Atan2(up, math.Hypot(fwd, right))
	composite = math.Acos(clampUnit(math.Cos(azimuth) * math.Cos(elevation)))
	return azimuth, elevation, composite, nil
}

// bodyAxes returns the body forward/right/down unit vectors expressed in the
// local north-east-down frame.
func bodyAxes(o Orientation) (fwd, right, down Vec3) {
	sy, cy := math.Sincos(o.Yaw)
	sp, cp := math.Sincos(o.Pitch)
	sr, cr := math.Sincos(o.Roll)

	fwd = Vec3{X: cp * cy, Y: cp * sy, Z: -sp}
	right = Vec3{X: -cr*sy + sr*sp*cy, Y: cr*cy + sr*sp*sy, Z: sr * cp}
	down = Vec3{X: sr*sy + cr*sp*cy, Y: -sr*cy + cr*sp*sy, Z: cr * cp}
	return fwd, right, down
}

// CalculateGroundDist returns the horizontal distance along the reference
// surface, ignoring the altitude difference. WGS84 uses the ellipsoidal
// geodesic; the planar models use horizontal distance in their local frame.
// Rejected under the perfect sphere.
func CalculateGroundDist(from, to Position, model EarthModel, conv *Converter) (float64, error) {
	if err := requireLocalLevel(model, "ground distance"); err != nil {
		return 0, err
	}
	if err := validatePosition(from); err != nil {
		return 0, err
	}
	if err := validatePosition(to); err != nil {
		return 0, err
	}

	if model == WGS84 {
		dist, _ := geodesicInverse(from.Lat, from.Lon, to.Lat, to.Lon)
		return dist, nil
	}
	off, err := localOffset(from, to, model, conv)
	if err != nil {
		return 0, err
	}
	return math.Hypot(off.X, off.Y), nil
}

// CalculateAltitude returns the signed altitude difference to.Alt - from.Alt
// in metres. Rejected under the perfect sphere, which has no consistent
// vertical datum.
func CalculateAltitude(from, to Position, model EarthModel, conv *Converter) (float64, error) {
	if err := requireLocalLevel(model, "altitude difference"); err != nil {
		return 0, err
	}
	if err := validatePosition(from); err != nil {
		return 0, err
	}
	if err := validatePosition(to); err != nil {
		return 0, err
	}
	return to.Alt - from.Alt, nil
}

// CalculateDRCRDownValue decomposes the offset from `from` to `to` into
// down-range (along `from`'s heading), cross-range (positive to the right of
// the heading), and the down value: the signed vertical drop of `to` below
// `from`'s local horizontal plane. Rejected under the perfect sphere.
func CalculateDRCRDownValue(from State, to Position, model EarthModel, conv *Converter) (downRange, crossRange, downValue float64, err error) {
	if err := requireLocalLevel(model, "down-range/cross-range"); err != nil {
		return 0, 0, 0, err
	}
	off, err := localOffset(from.Position, to, model, conv)
	if err != nil {
		return 0, 0, 0, err
	}

	sy, cy := math.Sincos(from.Orientation.Yaw)
	downRange = off.Y*cy + off.X*sy
	crossRange = off.X*cy - off.Y*sy
	downValue = -off.Z
	return downRange, crossRange, downValue, nil
}

// CalculateGeodesicDRCR returns down-range and cross-range relative to
// `from`'s heading using the full ellipsoidal geodesic, independent of the
// Earth-model parameter used elsewhere. It takes no converter.
func CalculateGeodesicDRCR(from State, to Position) (downRange, crossRange float64, err error) {
	if err := validatePosition(from.Position); err != nil {
		return 0, 0, err
	}
	if err := validatePosition(to); err != nil {
		return 0, 0, err
	}

	dist, azimuth := geodesicInverse(from.Position.Lat, from.Position.Lon, to.Lat, to.Lon)
	rel := azimuth - from.Orientation.Yaw
	return dist * math.Cos(rel), dist * math.Sin(rel), nil
}

// CalculateClosingVelocity returns the rate at which the slant range is
// shrinking, in metres per second: positive when the platforms are closing.
// Rejected under the perfect sphere.
func CalculateClosingVelocity(from, to State, model EarthModel, conv *Converter) (float64, error) {
	if err := requireLocalLevel(model, "closing velocity"); err != nil {
		return 0, err
	}
	off, err := localOffset(from.Position, to.Position, model, conv)
	if err != nil {
		return 0, err
	}
	los := off.Normalized()
	if los == (Vec3{}) {
		return 0, nil
	}
	return from.Velocity.Sub(to.Velocity).Dot(los), nil
}

// CalculateVelocityDelta returns the magnitude of the relative velocity
// between the two platforms' full 3-D velocity vectors, in metres per
// second. Rejected under the perfect sphere.
func CalculateVelocityDelta(from, to State, model EarthModel, conv *Converter) (float64, error) {
	if err := requireLocalLevel(model, "velocity delta"); err != nil {
		return 0, err
	}
	if err := validatePosition(from.Position); err != nil {
		return 0, err
	}
	if err := validatePosition(to.Position); err != nil {
		return 0, err
	}
	return to.Velocity.Sub(from.Velocity).Norm(), nil
}
