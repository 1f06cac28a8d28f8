package http

import (
	"errors"
	"net/http"

	"zenned/internal/event"
	pkgErrors "zenned/pkg/errors"
)

var (
	errUnauthorized = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	errInvalidID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event id")
	errInvalidJSON  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid JSON")
)

// mapError translates use-case errors into HTTP errors. Anything unknown is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrMissingTitle),
		errors.Is(err, event.ErrMissingDate),
		errors.Is(err, event.ErrInvalidDate),
		errors.Is(err, event.ErrInvalidTime),
		errors.Is(err, event.ErrInvalidRange),
		errors.Is(err, event.ErrNoFieldsToUpdate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
