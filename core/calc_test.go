package core

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateSlant_Symmetric(t *testing.T) {
	a := Position{Lat: 10 * degToRad, Lon: 20 * degToRad, Alt: 1000}
	b := Position{Lat: 12 * degToRad, Lon: 19 * degToRad, Alt: 9000}

	for _, model := range []EarthModel{WGS84, PerfectSphere} {
		ab, err := CalculateSlant(a, b, model, nil)
		if err != nil {
			t.Fatalf("slant a->b under %s: %v", model, err)
		}
		ba, err := CalculateSlant(b, a, model, nil)
		if err != nil {
			t.Fatalf("slant b->a under %s: %v", model, err)
		}
		near(t, ab, ba, 1e-6, "slant symmetry under "+model.String())
	}
}

func TestCalculateSlant_PureAltitude(t *testing.T) {
	a := Position{Lat: 45 * degToRad, Lon: 7 * degToRad, Alt: 0}
	b := Position{Lat: 45 * degToRad, Lon: 7 * degToRad, Alt: 10000}
	d, err := CalculateSlant(a, b, WGS84, nil)
	if err != nil {
		t.Fatalf("slant: %v", err)
	}
	near(t, d, 10000, 1e-6, "vertical slant equals altitude difference")
}

func TestCalculateGroundDist_OneDegreeEquator(t *testing.T) {
	from := Position{}
	to := Position{Lon: 1 * degToRad}
	d, err := CalculateGroundDist(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("ground distance: %v", err)
	}
	// One degree of longitude along the equator.
	near(t, d, 111319.49, 1.0, "equatorial arc length")
}

func TestCalculateGroundDist_OneDegreeMeridian(t *testing.T) {
	from := Position{}
	to := Position{Lat: 1 * degToRad}
	d, err := CalculateGroundDist(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("ground distance: %v", err)
	}
	near(t, d, 110574.3, 20.0, "meridian arc length at the equator")
}

func TestCalculateGroundDist_IgnoresAltitude(t *testing.T) {
	from := Position{Alt: 0}
	to := Position{Lon: 1 * degToRad, Alt: 50000}
	d, err := CalculateGroundDist(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("ground distance: %v", err)
	}
	near(t, d, 111319.49, 1.0, "altitude must not affect ground distance")
}

func TestCalculateAbsAzEl_DueEast(t *testing.T) {
	from := Position{}
	to := Position{Lon: 1 * degToRad}
	az, el, comp, err := CalculateAbsAzEl(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("abs az/el: %v", err)
	}
	near(t, az, math.Pi/2, 1e-9, "target due east has azimuth 90 deg")
	if el >= 0 {
		t.Errorf("surface target over the horizon should be slightly below level, got el=%g", el)
	}
	if comp < 0 || comp > math.Pi {
		t.Errorf("composite angle %g outside [0, pi]", comp)
	}
}

func TestCalculateAbsAzEl_CompositeBound(t *testing.T) {
	from := Position{Lat: 30 * degToRad, Lon: -40 * degToRad, Alt: 5000}
	targets := []Position{
		{Lat: 30 * degToRad, Lon: -40 * degToRad, Alt: 50000},
		{Lat: 31 * degToRad, Lon: -40 * degToRad},
		{Lat: 29 * degToRad, Lon: -41 * degToRad, Alt: 20000},
		{Lat: -10 * degToRad, Lon: 140 * degToRad},
		{Lat: 30.0001 * degToRad, Lon: -39.9999 * degToRad, Alt: 4999},
	}
	for _, to := range targets {
		for _, model := range []EarthModel{WGS84, PerfectSphere} {
			_, el, comp, err := CalculateAbsAzEl(from, to, model, nil)
			if err != nil {
				t.Fatalf("abs az/el under %s: %v", model, err)
			}
			if comp < 0 || comp > math.Pi {
				t.Errorf("composite angle %g outside [0, pi]", comp)
			}
			if el < -math.Pi/2 || el > math.Pi/2 {
				t.Errorf("elevation %g outside [-pi/2, pi/2]", el)
			}
		}
	}
}

func TestCalculateAbsAzEl_StraightUp(t *testing.T) {
	from := Position{Lat: 45 * degToRad, Lon: 9 * degToRad, Alt: 0}
	to := Position{Lat: 45 * degToRad, Lon: 9 * degToRad, Alt: 30000}
	_, el, comp, err := CalculateAbsAzEl(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("abs az/el: %v", err)
	}
	near(t, el, math.Pi/2, 1e-9, "target overhead has 90 deg elevation")
	near(t, comp, math.Pi/2, 1e-9, "overhead composite angle")
}

func TestCalculateRelAzEl_HeadingRotation(t *testing.T) {
	// Target due north; observer facing east should see it 90 deg to the left.
	from := State{
		Position:    Position{},
		Orientation: Orientation{Yaw: math.Pi / 2},
	}
	to := Position{Lat: 0.5 * degToRad}
	az, _, _, err := CalculateRelAzEl(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("rel az/el: %v", err)
	}
	near(t, az, 3*math.Pi/2, 1e-9, "relative azimuth of a target 90 deg left")

	// Facing straight at the target the relative azimuth collapses to zero.
	from.Orientation.Yaw = 0
	az, _, _, err = CalculateRelAzEl(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("rel az/el: %v", err)
	}
	if az > 1e-9 && az < 2*math.Pi-1e-9 {
		t.Errorf("expected relative azimuth ~0, got %g", az)
	}
}

func TestCalculateAltitude(t *testing.T) {
	from := Position{Lat: 10 * degToRad, Alt: 1500}
	to := Position{Lat: 11 * degToRad, Alt: 500}
	d, err := CalculateAltitude(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("altitude: %v", err)
	}
	near(t, d, -1000, 1e-9, "signed altitude difference")
}

func TestCalculateDRCRDownValue(t *testing.T) {
	// Observer at the equator heading north; target due east.
	from := State{Position: Position{}, Orientation: Orientation{Yaw: 0}}
	to := Position{Lon: 1 * degToRad}

	dr, cr, down, err := CalculateDRCRDownValue(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("DRCR: %v", err)
	}
	near(t, dr, 0, 1e-6, "due-east target has no down-range on a north heading")
	if cr < 111000 || cr > 111600 {
		t.Errorf("cross-range should be ~one degree of longitude to the right, got %g", cr)
	}
	if down <= 0 {
		t.Errorf("surface target beyond the horizon drops below the local plane, got %g", down)
	}

	// Heading east instead puts the whole offset down-range.
	from.Orientation.Yaw = math.Pi / 2
	dr, cr, _, err = CalculateDRCRDownValue(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("DRCR: %v", err)
	}
	if dr < 111000 || dr > 111600 {
		t.Errorf("down-range should carry the full offset, got %g", dr)
	}
	near(t, cr, 0, 1e-6, "no cross-range when heading at the target")
}

func TestCalculateGeodesicDRCR(t *testing.T) {
	from := State{Position: Position{}, Orientation: Orientation{Yaw: math.Pi / 2}}
	to := Position{Lon: 1 * degToRad}

	dr, cr, err := CalculateGeodesicDRCR(from, to)
	if err != nil {
		t.Fatalf("geodesic DRCR: %v", err)
	}
	near(t, dr, 111319.49, 1.0, "down-range along the heading")
	near(t, cr, 0, 1e-3, "no cross-range when heading at the target")

	// Heading north, the same target is entirely cross-range to the right.
	from.Orientation.Yaw = 0
	dr, cr, err = CalculateGeodesicDRCR(from, to)
	if err != nil {
		t.Fatalf("geodesic DRCR: %v", err)
	}
	near(t, dr, 0, 1e-3, "no down-range at 90 deg off heading")
	near(t, cr, 111319.49, 1.0, "cross-range to the right")
}

func TestCalculateClosingVelocity(t *testing.T) {
	from := State{
		Position: Position{},
		Velocity: Vec3{X: 10}, // eastbound
	}
	to := State{
		Position: Position{Lon: 0.01 * degToRad},
	}
	v, err := CalculateClosingVelocity(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("closing velocity: %v", err)
	}
	near(t, v, 10, 1e-3, "closing on a stationary target dead ahead")

	// Target running away at the same speed: no closure.
	to.Velocity = Vec3{X: 10}
	v, err = CalculateClosingVelocity(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("closing velocity: %v", err)
	}
	near(t, v, 0, 1e-9, "matched velocities give zero closing velocity")
}

func TestCalculateVelocityDelta(t *testing.T) {
	from := State{Position: Position{}, Velocity: Vec3{}}
	to := State{Position: Position{Lat: 0.01}, Velocity: Vec3{X: 3, Y: 4}}
	v, err := CalculateVelocityDelta(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("velocity delta: %v", err)
	}
	near(t, v, 5, 1e-12, "velocity delta magnitude")
}

func TestPerfectSphereRejection(t *testing.T) {
	from := State{Position: Position{}, Velocity: Vec3{X: 1}}
	to := State{Position: Position{Lon: 0.01}, Velocity: Vec3{}}

	checks := map[string]func() error{
		"rel az/el": func() error {
			_, _, _, err := CalculateRelAzEl(from, to.Position, PerfectSphere, nil)
			return err
		},
		"ground distance": func() error {
			_, err := CalculateGroundDist(from.Position, to.Position, PerfectSphere, nil)
			return err
		},
		"altitude": func() error {
			_, err := CalculateAltitude(from.Position, to.Position, PerfectSphere, nil)
			return err
		},
		"DRCR": func() error {
			_, _, _, err := CalculateDRCRDownValue(from, to.Position, PerfectSphere, nil)
			return err
		},
		"closing velocity": func() error {
			_, err := CalculateClosingVelocity(from, to, PerfectSphere, nil)
			return err
		},
		"velocity delta": func() error {
			_, err := CalculateVelocityDelta(from, to, PerfectSphere, nil)
			return err
		},
	}
	for name, fn := range checks {
		if err := fn(); !errors.Is(err, ErrModelUnsupported) {
			t.Errorf("%s under perfect sphere: want ErrModelUnsupported, got %v", name, err)
		}
	}

	// Slant and absolute az/el remain valid under the sphere.
	if _, err := CalculateSlant(from.Position, to.Position, PerfectSphere, nil); err != nil {
		t.Errorf("slant should accept the perfect sphere: %v", err)
	}
	if _, _, _, err := CalculateAbsAzEl(from.Position, to.Position, PerfectSphere, nil); err != nil {
		t.Errorf("abs az/el should accept the perfect sphere: %v", err)
	}
}

func TestLocalFrameModelsRequireConverter(t *testing.T) {
	from := Position{}
	to := Position{Lon: 0.001}
	for _, model := range []EarthModel{FlatEarth, TangentPlaneWGS84} {
		_, err := CalculateSlant(from, to, model, nil)
		if !errors.Is(err, ErrInvalidFrame) {
			t.Errorf("%s without converter: want ErrInvalidFrame, got %v", model, err)
		}
	}
}

func TestCalcUnderLocalFrameModels(t *testing.T) {
	conv := NewConverter(TangentPlaneWGS84)
	conv.SetReferenceOrigin(0, 0, 0)
	from := Position{}
	to := Position{Lon: 0.01 * degToRad}

	slantTP, err := CalculateSlant(from, to, TangentPlaneWGS84, conv)
	if err != nil {
		t.Fatalf("slant tangent-plane: %v", err)
	}
	slantWGS, err := CalculateSlant(from, to, WGS84, nil)
	if err != nil {
		t.Fatalf("slant WGS84: %v", err)
	}
	// Near the reference origin the tangent plane tracks the ellipsoid closely.
	near(t, slantTP, slantWGS, 0.5, "tangent-plane slant near the origin")

	flat := NewConverter(FlatEarth)
	flat.SetReferenceOrigin(0, 0, 0)
	ground, err := CalculateGroundDist(from, to, FlatEarth, flat)
	if err != nil {
		t.Fatalf("ground flat-earth: %v", err)
	}
	near(t, ground, 1113.2, 1.0, "flat-earth ground distance for 0.01 deg")
}

func TestCalcRejectsInvalidLatitude(t *testing.T) {
	bad := Position{Lat: 2.0}
	if _, err := CalculateSlant(bad, Position{}, WGS84, nil); !errors.Is(err, ErrRange) {
		t.Errorf("invalid latitude: want ErrRange, got %v", err)
	}
}
