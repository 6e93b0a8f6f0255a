package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// internalErrorMessage is the body message for any error that is not a *fiber.Error.
const internalErrorMessage = "Internal server error"

// ErrorHandler turns handler errors into a JSON body.
// A *fiber.Error keeps its status and message; anything else becomes a generic 500
// so that collaborator errors never leak to clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := internalErrorMessage

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"statusCode": code,
		"message":    message,
	})
}
