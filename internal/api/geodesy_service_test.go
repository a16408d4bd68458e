package api

import (
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/signalsfoundry/geodesy/gen/geodesypb"
	"github.com/signalsfoundry/geodesy/internal/logging"
	"github.com/signalsfoundry/geodesy/internal/observability"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestService() *GeodesyService {
	return NewGeodesyService(logging.Noop(), nil)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("status code = %v, want %v (err: %v)", status.Code(err), code, err)
	}
}

func TestConvertMgrsToGeodetic(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ConvertMgrsToGeodetic(context.Background(), &geodesypb.MgrsRequest{Mgrs: "4QFJ1234567890"})
	if err != nil {
		t.Fatalf("ConvertMgrsToGeodetic: %v", err)
	}
	if resp.GetLatitudeDeg() < 21.0 || resp.GetLatitudeDeg() > 21.8 {
		t.Errorf("latitude %g outside expected band", resp.GetLatitudeDeg())
	}
	if resp.GetLongitudeDeg() < -158.3 || resp.GetLongitudeDeg() > -157.5 {
		t.Errorf("longitude %g outside expected band", resp.GetLongitudeDeg())
	}
}

func TestConvertMgrsToGeodeticRejectsMalformed(t *testing.T) {
	svc := newTestService()

	for _, mgrs := range []string{"", "12ABC1234512", "18SIJ1234"} {
		_, err := svc.ConvertMgrsToGeodetic(context.Background(), &geodesypb.MgrsRequest{Mgrs: mgrs})
		wantCode(t, err, codes.InvalidArgument)
	}
}

func TestConvertGeodeticToMgrs(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ConvertGeodeticToMgrs(context.Background(), &geodesypb.GeodeticToMgrsRequest{
		Position: &geodesypb.GeodeticPosition{LatitudeDeg: 38.9, LongitudeDeg: -77.0},
	})
	if err != nil {
		t.Fatalf("ConvertGeodeticToMgrs: %v", err)
	}
	if got := resp.GetMgrs(); len(got) != 15 || got[:5] != "18SUJ" {
		t.Errorf("mgrs = %q, want 18SUJ prefix at default precision", got)
	}

	_, err = svc.ConvertGeodeticToMgrs(context.Background(), &geodesypb.GeodeticToMgrsRequest{})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.ConvertGeodeticToMgrs(context.Background(), &geodesypb.GeodeticToMgrsRequest{
		Position:  &geodesypb.GeodeticPosition{LatitudeDeg: 38.9, LongitudeDeg: -77.0},
		Precision: 9,
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestConvertUtmToGeodetic(t *testing.T) {
	svc := newTestService()

	resp, err := svc.ConvertUtmToGeodetic(context.Background(), &geodesypb.UtmRequest{
		Zone:      31,
		EastingM:  500000,
		NorthingM: 0,
	})
	if err != nil {
		t.Fatalf("ConvertUtmToGeodetic: %v", err)
	}
	if math.Abs(resp.GetLatitudeDeg()) > 1e-9 {
		t.Errorf("latitude = %g, want 0", resp.GetLatitudeDeg())
	}
	if math.Abs(resp.GetLongitudeDeg()-3.0) > 1e-9 {
		t.Errorf("longitude = %g, want 3", resp.GetLongitudeDeg())
	}

	_, err = svc.ConvertUtmToGeodetic(context.Background(), &geodesypb.UtmRequest{
		Zone:      0,
		EastingM:  500000,
		NorthingM: 0,
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestCalculateRange(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CalculateRange(context.Background(), &geodesypb.RangeRequest{
		From:  &geodesypb.GeodeticPosition{},
		To:    &geodesypb.GeodeticPosition{LongitudeDeg: 1},
		Model: geodesypb.EarthModel_EARTH_MODEL_WGS84,
	})
	if err != nil {
		t.Fatalf("CalculateRange: %v", err)
	}
	if math.Abs(resp.GetGroundM()-111319.49) > 1.0 {
		t.Errorf("ground = %g, want ~111319.49", resp.GetGroundM())
	}
	if resp.GetSlantM() <= 0 || resp.GetSlantM() > resp.GetGroundM() {
		t.Errorf("slant = %g should be positive and below the arc length %g", resp.GetSlantM(), resp.GetGroundM())
	}
	if resp.GetAltitudeDeltaM() != 0 {
		t.Errorf("altitude delta = %g, want 0", resp.GetAltitudeDeltaM())
	}
}

func TestCalculateRangeRejectsPerfectSphere(t *testing.T) {
	svc := newTestService()

	_, err := svc.CalculateRange(context.Background(), &geodesypb.RangeRequest{
		From:  &geodesypb.GeodeticPosition{},
		To:    &geodesypb.GeodeticPosition{LongitudeDeg: 1},
		Model: geodesypb.EarthModel_EARTH_MODEL_PERFECT_SPHERE,
	})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestCalculateRangeLocalFrameModels(t *testing.T) {
	svc := newTestService()

	// Local-frame models demand a reference origin.
	_, err := svc.CalculateRange(context.Background(), &geodesypb.RangeRequest{
		From:  &geodesypb.GeodeticPosition{},
		To:    &geodesypb.GeodeticPosition{LongitudeDeg: 0.01},
		Model: geodesypb.EarthModel_EARTH_MODEL_FLAT_EARTH,
	})
	wantCode(t, err, codes.InvalidArgument)

	resp, err := svc.CalculateRange(context.Background(), &geodesypb.RangeRequest{
		From:            &geodesypb.GeodeticPosition{},
		To:              &geodesypb.GeodeticPosition{LongitudeDeg: 0.01},
		Model:           geodesypb.EarthModel_EARTH_MODEL_FLAT_EARTH,
		ReferenceOrigin: &geodesypb.GeodeticPosition{},
	})
	if err != nil {
		t.Fatalf("CalculateRange flat earth: %v", err)
	}
	if math.Abs(resp.GetGroundM()-1113.2) > 1.0 {
		t.Errorf("flat-earth ground = %g, want ~1113.2", resp.GetGroundM())
	}
}

func TestCalculateRangeValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.CalculateRange(context.Background(), &geodesypb.RangeRequest{
		To: &geodesypb.GeodeticPosition{},
	})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.CalculateRange(context.Background(), &geodesypb.RangeRequest{
		From:  &geodesypb.GeodeticPosition{LatitudeDeg: 120},
		To:    &geodesypb.GeodeticPosition{},
		Model: geodesypb.EarthModel_EARTH_MODEL_WGS84,
	})
	wantCode(t, err, codes.InvalidArgument)

	_, err = svc.CalculateRange(context.Background(), &geodesypb.RangeRequest{
		From:  &geodesypb.GeodeticPosition{},
		To:    &geodesypb.GeodeticPosition{},
		Model: geodesypb.EarthModel(99),
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestCalculateAzEl(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CalculateAzEl(context.Background(), &geodesypb.AzElRequest{
		From:  &geodesypb.GeodeticPosition{},
		To:    &geodesypb.GeodeticPosition{LatitudeDeg: 0.5},
		Model: geodesypb.EarthModel_EARTH_MODEL_WGS84,
	})
	if err != nil {
		t.Fatalf("CalculateAzEl: %v", err)
	}
	if math.Abs(resp.GetTrueAzimuthDeg()) > 1e-6 {
		t.Errorf("true azimuth = %g, want 0 for a due-north target", resp.GetTrueAzimuthDeg())
	}
	if resp.GetRelativeAzimuthDeg() != 0 || resp.GetRelativeElevationDeg() != 0 {
		t.Errorf("relative angles should stay zero without an orientation: %+v", resp)
	}
}

func TestCalculateAzElWithOrientation(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CalculateAzEl(context.Background(), &geodesypb.AzElRequest{
		From:        &geodesypb.GeodeticPosition{},
		To:          &geodesypb.GeodeticPosition{LatitudeDeg: 0.5},
		Orientation: &geodesypb.Orientation{YawDeg: 90},
		Model:       geodesypb.EarthModel_EARTH_MODEL_WGS84,
	})
	if err != nil {
		t.Fatalf("CalculateAzEl: %v", err)
	}
	if math.Abs(resp.GetRelativeAzimuthDeg()-270) > 1e-6 {
		t.Errorf("relative azimuth = %g, want 270 for a target 90 deg left", resp.GetRelativeAzimuthDeg())
	}

	// Relative angles are a local-level product; the sphere cannot provide them.
	_, err = svc.CalculateAzEl(context.Background(), &geodesypb.AzElRequest{
		From:        &geodesypb.GeodeticPosition{},
		To:          &geodesypb.GeodeticPosition{LatitudeDeg: 0.5},
		Orientation: &geodesypb.Orientation{YawDeg: 90},
		Model:       geodesypb.EarthModel_EARTH_MODEL_PERFECT_SPHERE,
	})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestLocalFrameRequestsCountOriginResets(t *testing.T) {
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	svc := NewGeodesyService(logging.Noop(), collector)

	req := &geodesypb.RangeRequest{
		From:            &geodesypb.GeodeticPosition{LatitudeDeg: 10},
		To:              &geodesypb.GeodeticPosition{LatitudeDeg: 10, LongitudeDeg: 0.01},
		Model:           geodesypb.EarthModel_EARTH_MODEL_FLAT_EARTH,
		ReferenceOrigin: &geodesypb.GeodeticPosition{LatitudeDeg: 10},
	}
	if _, err := svc.CalculateRange(context.Background(), req); err != nil {
		t.Fatalf("CalculateRange: %v", err)
	}
	if got := testutil.ToFloat64(collector.OriginResets); got != 1 {
		t.Errorf("origin resets after one local-frame request = %v, want 1", got)
	}

	// Global models run converter-free and must not count a reset.
	req.Model = geodesypb.EarthModel_EARTH_MODEL_WGS84
	req.ReferenceOrigin = nil
	if _, err := svc.CalculateRange(context.Background(), req); err != nil {
		t.Fatalf("CalculateRange: %v", err)
	}
	if got := testutil.ToFloat64(collector.OriginResets); got != 1 {
		t.Errorf("origin resets after a global-model request = %v, want still 1", got)
	}
}
