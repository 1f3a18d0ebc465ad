package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/validate"
)

var errMissingID = errors.New("id is required")

// toConnectError maps domain errors onto Connect codes and logs the failure.
func toConnectError(op string, err error, attrs ...any) error {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		slog.Warn(op+" rejected", append(attrs, "error", err)...)
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		slog.Warn(op+" not found", append(attrs, "error", err)...)
		return connect.NewError(connect.CodeNotFound, err)
	default:
		slog.Error(op+" failed", append(attrs, "error", err)...)
		return connect.NewError(connect.CodeInternal, err)
	}
}

// requireID rejects blank record IDs before they reach the store.
func requireID(id string) error {
	if id == "" {
		return connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}
	return nil
}
