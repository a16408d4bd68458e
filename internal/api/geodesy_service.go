package api

import (
	"context"
	"math"

	"github.com/signalsfoundry/geodesy/core"
	"github.com/signalsfoundry/geodesy/gen/geodesypb"
	"github.com/signalsfoundry/geodesy/internal/logging"
	"github.com/signalsfoundry/geodesy/internal/observability"
	"github.com/signalsfoundry/geodesy/mgrs"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const degToRad = math.Pi / 180

// GeodesyService implements the Geodesy gRPC server on top of the core
// engine and the mgrs grid conversions.
type GeodesyService struct {
	geodesypb.UnimplementedGeodesyServer

	log     logging.Logger
	metrics *observability.Collector
}

// NewGeodesyService constructs a GeodesyService. Both arguments may be nil.
func NewGeodesyService(log logging.Logger, metrics *observability.Collector) *GeodesyService {
	if log == nil {
		log = logging.Noop()
	}
	return &GeodesyService{
		log:     log,
		metrics: metrics,
	}
}

// ConvertMgrsToGeodetic resolves an MGRS string to a geodetic position.
// Altitude is always zero; the grid carries no vertical component.
func (s *GeodesyService) ConvertMgrsToGeodetic(
	ctx context.Context,
	req *geodesypb.MgrsRequest,
) (*geodesypb.GeodeticPosition, error) {
	if req == nil || req.GetMgrs() == "" {
		return nil, status.Error(codes.InvalidArgument, "mgrs is required")
	}

	lat, lon, err := mgrs.ToGeodetic(req.GetMgrs())
	s.record("mgrs_to_geodetic", "WGS84", err)
	if err != nil {
		s.log.Warn(ctx, "mgrs conversion rejected",
			logging.String("mgrs", req.GetMgrs()),
			logging.String("error", err.Error()))
		return nil, ToStatusError(err)
	}

	s.log.Debug(ctx, "resolved grid reference",
		logging.String("mgrs", req.GetMgrs()),
		logging.Float64("latitude_deg", lat/degToRad),
		logging.Float64("longitude_deg", lon/degToRad))

	return &geodesypb.GeodeticPosition{
		LatitudeDeg:  lat / degToRad,
		LongitudeDeg: lon / degToRad,
	}, nil
}

// ConvertGeodeticToMgrs formats a geodetic position as an MGRS string.
// Precision defaults to 5 digits per group (1 m) when unset.
func (s *GeodesyService) ConvertGeodeticToMgrs(
	ctx context.Context,
	req *geodesypb.GeodeticToMgrsRequest,
) (*geodesypb.MgrsResponse, error) {
	if req == nil || req.GetPosition() == nil {
		return nil, status.Error(codes.InvalidArgument, "position is required")
	}

	precision := int(req.GetPrecision())
	if precision == 0 {
		precision = 5
	}

	pos := req.GetPosition()
	out, err := mgrs.FromGeodetic(pos.GetLatitudeDeg()*degToRad, pos.GetLongitudeDeg()*degToRad, precision)
	s.record("geodetic_to_mgrs", "WGS84", err)
	if err != nil {
		return nil, ToStatusError(err)
	}

	return &geodesypb.MgrsResponse{Mgrs: out}, nil
}

// ConvertUtmToGeodetic resolves absolute UTM coordinates to a geodetic
// position.
func (s *GeodesyService) ConvertUtmToGeodetic(
	ctx context.Context,
	req *geodesypb.UtmRequest,
) (*geodesypb.GeodeticPosition, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	hemisphere := mgrs.HemisphereNorth
	if req.GetSouthernHemisphere() {
		hemisphere = mgrs.HemisphereSouth
	}

	lat, lon, err := mgrs.UTMToGeodetic(int(req.GetZone()), hemisphere, req.GetEastingM(), req.GetNorthingM())
	s.record("utm_to_geodetic", "WGS84", err)
	if err != nil {
		return nil, ToStatusError(err)
	}

	return &geodesypb.GeodeticPosition{
		LatitudeDeg:  lat / degToRad,
		LongitudeDeg: lon / degToRad,
	}, nil
}

// CalculateRange computes slant range, ground distance, and altitude delta
// between two positions under the requested earth model.
func (s *GeodesyService) CalculateRange(
	ctx context.Context,
	req *geodesypb.RangeRequest,
) (*geodesypb.RangeResponse, error) {
	if req == nil || req.GetFrom() == nil || req.GetTo() == nil {
		return nil, status.Error(codes.InvalidArgument, "from and to are required")
	}

	model, err := modelFromProto(req.GetModel())
	if err != nil {
		return nil, err
	}
	conv, err := s.converterFor(model, req.GetReferenceOrigin())
	if err != nil {
		return nil, err
	}

	from := positionFromProto(req.GetFrom())
	to := positionFromProto(req.GetTo())

	slant, err := core.CalculateSlant(from, to, model, conv)
	s.record("slant", model.String(), err)
	if err != nil {
		return nil, ToStatusError(err)
	}
	ground, err := core.CalculateGroundDist(from, to, model, conv)
	s.record("ground_dist", model.String(), err)
	if err != nil {
		return nil, ToStatusError(err)
	}
	altDelta, err := core.CalculateAltitude(from, to, model, conv)
	s.record("altitude", model.String(), err)
	if err != nil {
		return nil, ToStatusError(err)
	}

	return &geodesypb.RangeResponse{
		SlantM:         slant,
		GroundM:        ground,
		AltitudeDeltaM: altDelta,
	}, nil
}

// CalculateAzEl computes true azimuth/elevation/composite angles, and the
// body-relative set when an orientation is supplied.
func (s *GeodesyService) CalculateAzEl(
	ctx context.Context,
	req *geodesypb.AzElRequest,
) (*geodesypb.AzElResponse, error) {
	if req == nil || req.GetFrom() == nil || req.GetTo() == nil {
		return nil, status.Error(codes.InvalidArgument, "from and to are required")
	}

	model, err := modelFromProto(req.GetModel())
	if err != nil {
		return nil, err
	}
	conv, err := s.converterFor(model, req.GetReferenceOrigin())
	if err != nil {
		return nil, err
	}

	from := positionFromProto(req.GetFrom())
	to := positionFromProto(req.GetTo())

	az, el, comp, err := core.CalculateAbsAzEl(from, to, model, conv)
	s.record("abs_az_el", model.String(), err)
	if err != nil {
		return nil, ToStatusError(err)
	}

	resp := &geodesypb.AzElResponse{
		TrueAzimuthDeg:   az / degToRad,
		TrueElevationDeg: el / degToRad,
		CompositeDeg:     comp / degToRad,
	}

	if o := req.GetOrientation(); o != nil {
		state := core.State{
			Position: from,
			Orientation: core.Orientation{
				Yaw:   o.GetYawDeg() * degToRad,
				Pitch: o.GetPitchDeg() * degToRad,
				Roll:  o.GetRollDeg() * degToRad,
			},
		}
		relAz, relEl, relComp, err := core.CalculateRelAzEl(state, to, model, conv)
		s.record("rel_az_el", model.String(), err)
		if err != nil {
			return nil, ToStatusError(err)
		}
		resp.RelativeAzimuthDeg = relAz / degToRad
		resp.RelativeElevationDeg = relEl / degToRad
		resp.RelativeCompositeDeg = relComp / degToRad
	}

	return resp, nil
}

func (s *GeodesyService) record(operation, model string, err error) {
	if s.metrics != nil {
		s.metrics.RecordConversion(operation, model, err)
	}
}

func positionFromProto(p *geodesypb.GeodeticPosition) core.Position {
	return core.Position{
		Lat: p.GetLatitudeDeg() * degToRad,
		Lon: p.GetLongitudeDeg() * degToRad,
		Alt: p.GetAltitudeM(),
	}
}

func modelFromProto(m geodesypb.EarthModel) (core.EarthModel, error) {
	switch m {
	case geodesypb.EarthModel_EARTH_MODEL_UNSPECIFIED, geodesypb.EarthModel_EARTH_MODEL_WGS84:
		return core.WGS84, nil
	case geodesypb.EarthModel_EARTH_MODEL_FLAT_EARTH:
		return core.FlatEarth, nil
	case geodesypb.EarthModel_EARTH_MODEL_PERFECT_SPHERE:
		return core.PerfectSphere, nil
	case geodesypb.EarthModel_EARTH_MODEL_TANGENT_PLANE_WGS84:
		return core.TangentPlaneWGS84, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "unknown earth model %d", m)
	}
}

// converterFor builds a converter anchored at the reference origin for the
// models that require one; other models run converter-free.
func (s *GeodesyService) converterFor(model core.EarthModel, origin *geodesypb.GeodeticPosition) (*core.Converter, error) {
	if model != core.FlatEarth && model != core.TangentPlaneWGS84 {
		return nil, nil
	}
	if origin == nil {
		return nil, status.Error(codes.InvalidArgument, "reference_origin is required for local-frame earth models")
	}
	conv := core.NewConverter(model)
	conv.SetReferenceOrigin(origin.GetLatitudeDeg()*degToRad, origin.GetLongitudeDeg()*degToRad, origin.GetAltitudeM())
	if s.metrics != nil {
		s.metrics.RecordOriginReset()
	}
	return conv, nil
}
