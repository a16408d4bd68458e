package tests

import (
	"context"
	"math"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/signalsfoundry/geodesy/gen/geodesypb"
	"github.com/signalsfoundry/geodesy/internal/api"
	"github.com/signalsfoundry/geodesy/internal/logging"
	"github.com/signalsfoundry/geodesy/internal/observability"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type geodesyTestEnv struct {
	ctx        context.Context
	cancel     context.CancelFunc
	grpcServer *grpc.Server
	serveErr   <-chan error
	collector  *observability.Collector
	client     geodesypb.GeodesyClient
}

func newGeodesyTestEnv(t *testing.T) *geodesyTestEnv {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	collector, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		cancel()
		t.Fatalf("NewCollector: %v", err)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		cancel()
		t.Fatalf("net.Listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			api.RequestIDUnaryServerInterceptor(logging.Noop()),
			collector.UnaryServerInterceptor(),
		),
	)
	geodesypb.RegisterGeodesyServer(grpcServer, api.NewGeodesyService(logging.Noop(), collector))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(lis)
	}()

	conn, err := grpc.DialContext(ctx, lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		cancel()
		t.Fatalf("grpc.DialContext: %v", err)
	}

	env := &geodesyTestEnv{
		ctx:        ctx,
		cancel:     cancel,
		grpcServer: grpcServer,
		serveErr:   serveErr,
		collector:  collector,
		client:     geodesypb.NewGeodesyClient(conn),
	}

	t.Cleanup(func() {
		grpcServer.GracefulStop()
		_ = conn.Close()
		cancel()
	})

	return env
}

func TestEndToEndConversionRoundTrip(t *testing.T) {
	env := newGeodesyTestEnv(t)
	ctx := env.ctx

	from, err := env.client.ConvertMgrsToGeodetic(ctx, &geodesypb.MgrsRequest{
		Mgrs: "4QFJ1234567890",
	})
	if err != nil {
		t.Fatalf("ConvertMgrsToGeodetic: %v", err)
	}
	if from.GetLatitudeDeg() < 21 || from.GetLatitudeDeg() > 22 {
		t.Fatalf("latitude = %g, want within Honolulu band", from.GetLatitudeDeg())
	}
	if from.GetLongitudeDeg() > -157 || from.GetLongitudeDeg() < -159 {
		t.Fatalf("longitude = %g, want within Honolulu band", from.GetLongitudeDeg())
	}

	back, err := env.client.ConvertGeodeticToMgrs(ctx, &geodesypb.GeodeticToMgrsRequest{
		Position: &geodesypb.GeodeticPosition{
			LatitudeDeg:  from.GetLatitudeDeg(),
			LongitudeDeg: from.GetLongitudeDeg(),
		},
		Precision: 5,
	})
	if err != nil {
		t.Fatalf("ConvertGeodeticToMgrs: %v", err)
	}
	if back.GetMgrs() != "4QFJ1234567890" {
		t.Fatalf("round trip = %q, want %q", back.GetMgrs(), "4QFJ1234567890")
	}

	select {
	case err := <-env.serveErr:
		if err != nil {
			t.Fatalf("grpc Serve: %v", err)
		}
	default:
	}
}

func TestEndToEndRangeAndAzEl(t *testing.T) {
	env := newGeodesyTestEnv(t)
	ctx := env.ctx

	from := &geodesypb.GeodeticPosition{LatitudeDeg: 0, LongitudeDeg: 0, AltitudeM: 0}
	to := &geodesypb.GeodeticPosition{LatitudeDeg: 0, LongitudeDeg: 1, AltitudeM: 0}

	rng, err := env.client.CalculateRange(ctx, &geodesypb.RangeRequest{
		From:  from,
		To:    to,
		Model: geodesypb.EarthModel_EARTH_MODEL_WGS84,
	})
	if err != nil {
		t.Fatalf("CalculateRange: %v", err)
	}
	if math.Abs(rng.GetGroundM()-111319.49) > 1.0 {
		t.Fatalf("ground = %g, want ~111319.49", rng.GetGroundM())
	}
	if rng.GetSlantM() <= 0 || rng.GetSlantM() >= rng.GetGroundM() {
		t.Fatalf("slant = %g, want chord shorter than arc %g", rng.GetSlantM(), rng.GetGroundM())
	}

	azel, err := env.client.CalculateAzEl(ctx, &geodesypb.AzElRequest{
		From:        from,
		To:          to,
		Model:       geodesypb.EarthModel_EARTH_MODEL_WGS84,
		Orientation: &geodesypb.Orientation{YawDeg: 90},
	})
	if err != nil {
		t.Fatalf("CalculateAzEl: %v", err)
	}
	if math.Abs(azel.GetTrueAzimuthDeg()-90) > 0.1 {
		t.Fatalf("true azimuth = %g, want ~90", azel.GetTrueAzimuthDeg())
	}
	if math.Abs(azel.GetRelativeAzimuthDeg()) > 0.1 && math.Abs(azel.GetRelativeAzimuthDeg()-360) > 0.1 {
		t.Fatalf("relative azimuth = %g, want ~0 for a due-east heading", azel.GetRelativeAzimuthDeg())
	}
}

func TestEndToEndErrorCodes(t *testing.T) {
	env := newGeodesyTestEnv(t)
	ctx := env.ctx

	if _, err := env.client.ConvertMgrsToGeodetic(ctx, &geodesypb.MgrsRequest{Mgrs: "99XYZ00"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("malformed grid code = %v, want InvalidArgument", status.Code(err))
	}

	_, err := env.client.CalculateRange(ctx, &geodesypb.RangeRequest{
		From:  &geodesypb.GeodeticPosition{LatitudeDeg: 10},
		To:    &geodesypb.GeodeticPosition{LatitudeDeg: 11},
		Model: geodesypb.EarthModel_EARTH_MODEL_PERFECT_SPHERE,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("perfect-sphere range code = %v, want FailedPrecondition", status.Code(err))
	}

	_, err = env.client.CalculateRange(ctx, &geodesypb.RangeRequest{
		From:  &geodesypb.GeodeticPosition{LatitudeDeg: 10},
		To:    &geodesypb.GeodeticPosition{LatitudeDeg: 11},
		Model: geodesypb.EarthModel_EARTH_MODEL_FLAT_EARTH,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("flat-earth without origin code = %v, want InvalidArgument", status.Code(err))
	}
}
