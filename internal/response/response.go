package response

import (
	"github.com/gofiber/fiber/v2"
)

const validationMessage = "Validation error"

// SuccessEnvelope wraps the payload of a successful call.
type SuccessEnvelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ErrorEnvelope carries the message of the error that failed the call.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ValidationErrorEnvelope lists every rejected constraint of a payload.
type ValidationErrorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// NewSuccess builds a success envelope around data.
func NewSuccess[T any](message string, data T) SuccessEnvelope[T] {
	return SuccessEnvelope[T]{Success: true, Message: message, Data: data}
}

// NewError builds an error envelope from err.
func NewError(message string, err error) ErrorEnvelope {
	return ErrorEnvelope{Success: false, Message: message, Error: err.Error()}
}

// NewValidationError builds a validation error envelope listing every violation.
func NewValidationError(errors []string) ValidationErrorEnvelope {
	return ValidationErrorEnvelope{Success: false, Message: validationMessage, Errors: errors}
}

// Success writes a success envelope with the given status.
func Success[T any](c *fiber.Ctx, status int, message string, data T) error {
	return c.Status(status).JSON(NewSuccess(message, data))
}

// Error writes an error envelope carrying err's message.
func Error(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(NewError(message, err))
}

// ValidationError writes a 422 validation error envelope.
func ValidationError(c *fiber.Ctx, errors []string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(NewValidationError(errors))
}
