package api

import (
	"errors"

	"github.com/signalsfoundry/geodesy/core"
	"github.com/signalsfoundry/geodesy/mgrs"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatusError maps engine errors onto gRPC status codes.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, mgrs.ErrParse),
		errors.Is(err, mgrs.ErrRange),
		errors.Is(err, core.ErrRange),
		errors.Is(err, core.ErrInvalidFrame):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, core.ErrModelUnsupported):
		return status.Error(codes.FailedPrecondition, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
