package http

import (
	"errors"
	"net/http"

	"zenned/internal/user"
	pkgErrors "zenned/pkg/errors"
)

var (
	errUnauthorized = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	errInvalidJSON  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid JSON")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrMissingFields), errors.Is(err, user.ErrInvalidSettings):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrInvalidPassword):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
