package server

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"

	"spirit11/internal/catalog"
	"spirit11/internal/importer"
	"spirit11/internal/repository"
	"spirit11/internal/roster"
)

var errInternal = errors.New("internal error")

// codeFor maps domain errors onto connect codes. ok is false for errors
// that must not leak to the caller.
func codeFor(err error) (code connect.Code, ok bool) {
	var rowErr *importer.RowError
	switch {
	case errors.Is(err, roster.ErrDuplicatePlayer):
		return connect.CodeAlreadyExists, true
	case errors.Is(err, roster.ErrTeamFull):
		return connect.CodeResourceExhausted, true
	case errors.Is(err, roster.ErrInsufficientBudget):
		return connect.CodeFailedPrecondition, true
	case errors.Is(err, roster.ErrPlayerNotInTeam),
		errors.Is(err, repository.ErrPlayerNotFound):
		return connect.CodeNotFound, true
	case errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, importer.ErrEmpty),
		errors.Is(err, importer.ErrMalformed),
		errors.As(err, &rowErr):
		return connect.CodeInvalidArgument, true
	case errors.Is(err, repository.ErrVersionConflict):
		return connect.CodeAborted, true
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded, true
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled, true
	}
	return connect.CodeInternal, false
}

func (s *FantasyServer) toConnectError(ctx context.Context, procedure string, err error) error {
	code, ok := codeFor(err)
	if ok {
		return connect.NewError(code, err)
	}
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &s.logger
	}
	logger.Error().Err(err).Str("procedure", procedure).Msg("request failed")
	return connect.NewError(code, errInternal)
}
