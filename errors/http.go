package errors

import (
	goerrors "errors"

	"github.com/gofiber/fiber/v2"
)

// MapToHTTPError translates service errors into transport outcomes. This is
// the single place where the "wrong state for this operation" cases become
// HTTP statuses; handlers never inspect sheet variants themselves.
func MapToHTTPError(err error) error {
	switch {
	case err == nil:
		return nil
	case goerrors.Is(err, ErrUnknownSession):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case goerrors.Is(err, ErrSessionFull),
		goerrors.Is(err, ErrSignupClosed),
		goerrors.Is(err, ErrSheetAlreadyExists):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case goerrors.Is(err, ErrInvalidCapacity):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
