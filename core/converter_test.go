package core

import (
	"errors"
	"math"
	"testing"
)

const degToRad = math.Pi / 180

func near(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.9g, want %.9g (tol %g)", what, got, want, tol)
	}
}

func TestGeodeticToECEF_KnownPoints(t *testing.T) {
	v := geodeticToECEF(Position{Lat: 0, Lon: 0, Alt: 0}, WGS84)
	near(t, v.X, WGS84SemiMajorAxis, 1e-6, "equator/prime meridian X")
	near(t, v.Y, 0, 1e-6, "equator/prime meridian Y")
	near(t, v.Z, 0, 1e-6, "equator/prime meridian Z")

	v = geodeticToECEF(Position{Lat: 90 * degToRad, Lon: 0, Alt: 0}, WGS84)
	near(t, v.X, 0, 1e-3, "north pole X")
	near(t, v.Z, 6356752.3142, 1e-3, "north pole Z is the semi-minor axis")
}

func TestECEFGeodeticRoundTrip(t *testing.T) {
	positions := []Position{
		{Lat: 0, Lon: 0, Alt: 0},
		{Lat: 45 * degToRad, Lon: 45 * degToRad, Alt: 1000},
		{Lat: -33.87 * degToRad, Lon: 151.21 * degToRad, Alt: 58},
		{Lat: 80 * degToRad, Lon: -120 * degToRad, Alt: 12000},
		{Lat: -89.9 * degToRad, Lon: 10 * degToRad, Alt: 2800},
	}
	for _, p := range positions {
		got := ecefToGeodetic(geodeticToECEF(p, WGS84), WGS84)
		near(t, got.Lat, p.Lat, 1e-11, "round-trip latitude")
		near(t, got.Lon, p.Lon, 1e-11, "round-trip longitude")
		near(t, got.Alt, p.Alt, 1e-4, "round-trip altitude")
	}
}

func TestConverterLocalENURoundTrip(t *testing.T) {
	conv := NewConverter(WGS84)
	conv.SetReferenceOrigin(38.9*degToRad, -77.0*degToRad, 100)

	in := NewGeodetic(38.95*degToRad, -76.9*degToRad, 2500)
	local, err := conv.Convert(in, FrameLocalENU)
	if err != nil {
		t.Fatalf("Convert to local ENU: %v", err)
	}
	if local.Vec.X <= 0 || local.Vec.Y <= 0 {
		t.Errorf("point north-east of origin should have positive east/north, got %+v", local.Vec)
	}

	back, err := conv.Convert(local, FrameGeodetic)
	if err != nil {
		t.Fatalf("Convert back to geodetic: %v", err)
	}
	near(t, back.Vec.X, in.Vec.X, 1e-11, "ENU round-trip latitude")
	near(t, back.Vec.Y, in.Vec.Y, 1e-11, "ENU round-trip longitude")
	near(t, back.Vec.Z, in.Vec.Z, 1e-4, "ENU round-trip altitude")
}

func TestConverterFlatEarthRoundTrip(t *testing.T) {
	conv := NewConverter(FlatEarth)
	conv.SetReferenceOrigin(60*degToRad, 25*degToRad, 0)

	in := NewGeodetic(60.01*degToRad, 25.02*degToRad, 300)
	flat, err := conv.Convert(in, FrameFlatEarth)
	if err != nil {
		t.Fatalf("Convert to flat earth: %v", err)
	}
	back, err := conv.Convert(flat, FrameGeodetic)
	if err != nil {
		t.Fatalf("Convert back to geodetic: %v", err)
	}
	near(t, back.Vec.X, in.Vec.X, 1e-12, "flat-earth round-trip latitude")
	near(t, back.Vec.Y, in.Vec.Y, 1e-12, "flat-earth round-trip longitude")
	near(t, back.Vec.Z, in.Vec.Z, 1e-9, "flat-earth round-trip altitude")
}

func TestConverterSameFrameIsNoOp(t *testing.T) {
	conv := NewConverter(WGS84)
	in := NewGeodetic(10*degToRad, 20*degToRad, 30)
	out, err := conv.Convert(in, FrameGeodetic)
	if err != nil {
		t.Fatalf("same-frame convert: %v", err)
	}
	if out != in {
		t.Errorf("same-frame convert should be a no-op, got %+v", out)
	}
}

func TestConverterRejectsFramesPerModel(t *testing.T) {
	cases := []struct {
		model EarthModel
		frame Frame
	}{
		{PerfectSphere, FrameLocalENU},
		{PerfectSphere, FrameFlatEarth},
		{FlatEarth, FrameECEF},
		{FlatEarth, FrameLocalENU},
		{WGS84, FrameFlatEarth},
		{TangentPlaneWGS84, FrameFlatEarth},
	}
	for _, tc := range cases {
		conv := NewConverter(tc.model)
		_, err := conv.Convert(NewGeodetic(0, 0, 0), tc.frame)
		if !errors.Is(err, ErrInvalidFrame) {
			t.Errorf("model %s to frame %s: want ErrInvalidFrame, got %v", tc.model, tc.frame, err)
		}
	}
}

func TestConverterPerfectSphereECEF(t *testing.T) {
	conv := NewConverter(PerfectSphere)
	out, err := conv.Convert(NewGeodetic(0, 0, 0), FrameECEF)
	if err != nil {
		t.Fatalf("sphere geodetic to ECEF: %v", err)
	}
	near(t, out.Vec.X, SphereRadius, 1e-6, "sphere surface radius")
}

func TestConverterRejectsBadLatitude(t *testing.T) {
	conv := NewConverter(WGS84)
	_, err := conv.Convert(NewGeodetic(2.0, 0, 0), FrameECEF)
	if !errors.Is(err, ErrRange) {
		t.Errorf("latitude beyond +/-pi/2: want ErrRange, got %v", err)
	}
}

func TestSetReferenceOriginReset(t *testing.T) {
	conv := NewConverter(TangentPlaneWGS84)
	conv.SetReferenceOrigin(0, 0, 0)
	p := NewGeodetic(0.001, 0.001, 0)

	first, err := conv.Convert(p, FrameLocalENU)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	conv.SetReferenceOrigin(0.001, 0.001, 0)
	second, err := conv.Convert(p, FrameLocalENU)
	if err != nil {
		t.Fatalf("convert after reset: %v", err)
	}
	if first.Vec.Norm() < 1 {
		t.Errorf("offset from old origin should be kilometres, got %v m", first.Vec.Norm())
	}
	if second.Vec.Norm() > 1e-3 {
		t.Errorf("origin moved onto the point; offset should be ~0, got %v m", second.Vec.Norm())
	}
}

func TestNormalizeLonAndAzimuth(t *testing.T) {
	near(t, NormalizeLon(3*math.Pi), math.Pi, 1e-12, "3*pi wraps to pi")
	near(t, NormalizeLon(-math.Pi), math.Pi, 1e-12, "-pi wraps to +pi")
	near(t, NormalizeAzimuth(-math.Pi/2), 3*math.Pi/2, 1e-12, "-90 deg wraps to 270 deg")
	near(t, NormalizeAzimuth(2*math.Pi), 0, 1e-12, "full turn wraps to zero")
}
