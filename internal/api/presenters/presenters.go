package presenters

import (
	"FindNest/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// StatusCode maps the domain error taxonomy onto HTTP statuses. Unrecognized
// errors are treated as internal store failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrItemAlreadyClaimed),
		errors.Is(err, domain.ErrUserAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrMissingRequiredField),
		errors.Is(err, domain.ErrInvalidDateFound),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidImageURL),
		errors.Is(err, domain.ErrTooManyImages),
		errors.Is(err, domain.ErrInvalidClaimantName),
		errors.Is(err, domain.ErrInvalidClaimDate),
		errors.Is(err, domain.ErrInvalidDepartment),
		errors.Is(err, domain.ErrMissingUserField),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrUsernameLength),
		errors.Is(err, domain.ErrUsernameSpaces),
		errors.Is(err, domain.ErrUsernameLowercase),
		errors.Is(err, domain.ErrUsernameCharset),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
