package http

import (
	"errors"
	"net/http"

	"zenned/internal/schedule"
	pkgErrors "zenned/pkg/errors"
	"zenned/pkg/llmprovider"
)

var (
	errUnauthorized = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	errInvalidJSON  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid JSON")
)

// providerDetails is what the client sees about a failed provider call.
type providerDetails struct {
	Provider string `json:"provider,omitempty"`
	Status   int    `json:"status,omitempty"`
	Body     string `json:"body,omitempty"`
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrEmptyPrompt):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	case errors.Is(err, schedule.ErrTimeout):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, schedule.ErrTimeout.Error())
	case errors.Is(err, schedule.ErrEmptyResponse):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, schedule.ErrProviderFailed):
		httpErr := pkgErrors.NewHTTPError(http.StatusBadGateway, schedule.ErrProviderFailed.Error())
		var perr *llmprovider.ProviderError
		if errors.As(err, &perr) {
			return httpErr.WithDetails(providerDetails{
				Provider: perr.Provider,
				Status:   perr.StatusCode,
				Body:     perr.Body,
			})
		}
		return httpErr
	case errors.Is(err, schedule.ErrPersistFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
