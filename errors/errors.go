package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidPayload     = fmt.Errorf("unexpected telemetry payload")
	ErrOnlyRuleFiles      = fmt.Errorf("rules directory contains directories")
	ErrEmptyRules         = fmt.Errorf("no redaction rules have been found")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrTokenGeneration    = fmt.Errorf("unable to generate token")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrMissingMetadata    = fmt.Errorf("missing request metadata")
	ErrSessionNotFound    = fmt.Errorf("session not found")
	ErrInvalidSession     = fmt.Errorf("invalid session metadata")
	ErrEntryNotFound      = fmt.Errorf("entry not found")
	ErrPipelineSaturated  = fmt.Errorf("ingest pipeline saturated")
)

// MapToGRPCError translates domain sentinels into transport codes so
// handlers never leak internals to clients.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, ErrUserAlreadyExists.Error())
	case stderrors.Is(err, ErrInvalidCredentials), stderrors.Is(err, ErrInvalidToken):
		return status.Error(codes.Unauthenticated, ErrInvalidCredentials.Error())
	case stderrors.Is(err, ErrInvalidPassword), stderrors.Is(err, ErrInvalidSession):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrUserNotFound), stderrors.Is(err, ErrSessionNotFound), stderrors.Is(err, ErrEntryNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrPipelineSaturated):
		return status.Error(codes.ResourceExhausted, ErrPipelineSaturated.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
