package http

import (
	"errors"
	"net/http"

	"lastmile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail maps a use-case error onto the HTTP status the client should see and
// writes the JSON error envelope.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrReferentialIntegrity):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// badRequest writes a 400 with a fixed message, for malformed bodies and
// unparsable parameters.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
