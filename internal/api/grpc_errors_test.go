package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/signalsfoundry/geodesy/core"
	"github.com/signalsfoundry/geodesy/mgrs"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{nil, codes.OK},
		{fmt.Errorf("%w: bad letter", mgrs.ErrParse), codes.InvalidArgument},
		{fmt.Errorf("%w: easting", mgrs.ErrRange), codes.InvalidArgument},
		{fmt.Errorf("%w: latitude", core.ErrRange), codes.InvalidArgument},
		{fmt.Errorf("%w: no converter", core.ErrInvalidFrame), codes.InvalidArgument},
		{fmt.Errorf("%w: ground distance", core.ErrModelUnsupported), codes.FailedPrecondition},
		{errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		got := ToStatusError(tc.err)
		if tc.err == nil {
			if got != nil {
				t.Errorf("ToStatusError(nil) = %v, want nil", got)
			}
			continue
		}
		if status.Code(got) != tc.code {
			t.Errorf("ToStatusError(%v) code = %v, want %v", tc.err, status.Code(got), tc.code)
		}
	}
}

func TestToStatusErrorPassesThroughStatus(t *testing.T) {
	orig := status.Error(codes.NotFound, "missing")
	if got := ToStatusError(orig); got != orig {
		t.Errorf("existing status errors must pass through unchanged, got %v", got)
	}
}
