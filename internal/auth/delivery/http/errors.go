package http

import (
	"errors"
	"net/http"

	"meeting-scheduler/internal/auth"
	pkgErrors "meeting-scheduler/pkg/errors"
)

var (
	errSignInCancelled = pkgErrors.NewHTTPError(http.StatusBadRequest, "Sign-in cancelled")
	errInvalidState    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid OAuth state")
	errMissingCode     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing authorization code")
	errSignInFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Sign-in failed")
)

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrStateMismatch):
		return errInvalidState
	case errors.Is(err, auth.ErrMissingCode):
		return errMissingCode
	case errors.Is(err, auth.ErrExchange),
		errors.Is(err, auth.ErrUserInfo):
		return errSignInFailed.WithDetail(err.Error())
	default:
		return pkgErrors.ErrInternalServerError.WithDetail(err.Error())
	}
}
