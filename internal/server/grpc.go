package server

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paperpilot/invoicer/internal/common"
)

// parseID parses a required UUID request field.
func parseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(field + " must be a UUID")
	}
	return id, nil
}

// rpcError maps classified domain errors onto gRPC status codes. Anything
// unclassified surfaces as Internal without leaking detail.
func rpcError(err error) error {
	switch {
	case err == nil:
		return nil
	case status.Code(err) != codes.Unknown:
		return err
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrIllegalTransition):
		return common.FailedPreconditionError(err.Error())
	case errors.Is(err, common.ErrAlreadyProcessing):
		return status.Error(codes.Aborted, err.Error())
	default:
		return common.InternalError("internal error")
	}
}
