package grpc

import (
	"errors"

	"github.com/dmitrijs2005/locagri/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC statuses. Messages of auth failures
// are fixed strings the client shows as-is.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.InvalidCredentialsMessage)
	case errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, rootMessage(err))
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "User already registered")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorInvalidArgument), errors.Is(err, common.ErrorInvalidQuery):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func rootMessage(err error) string {
	for _, e := range []error{common.ErrTokenExpired, common.ErrRefreshTokenExpired, common.ErrInvalidToken} {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return err.Error()
}
