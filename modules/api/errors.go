package api

import (
	"log"

	"github.com/example/board-service/domain/apperr"
	"github.com/gofiber/fiber/v2"
)

// failure maps a wire failure code to an HTTP status and a safe
// client-facing default. Login failures that would reveal whether an
// account exists share one message.
var failures = map[string]struct {
	status  int
	kind    string
	message string
}{
	apperr.CodeInvalidArgument:    {fiber.StatusBadRequest, "bad_request", "Invalid request"},
	apperr.CodeDuplicateUser:      {fiber.StatusConflict, "conflict", "User id already exists"},
	apperr.CodeUserNotFound:       {fiber.StatusUnauthorized, "unauthorized", "Invalid user id or password"},
	apperr.CodeInvalidCredentials: {fiber.StatusUnauthorized, "unauthorized", "Invalid user id or password"},
	apperr.CodeAccountInactive:    {fiber.StatusForbidden, "forbidden", "Account is deactivated"},
	apperr.CodeNotFound:           {fiber.StatusNotFound, "not_found", "Resource not found"},
	apperr.CodeForbidden:          {fiber.StatusForbidden, "forbidden", "You are not the author of this resource"},
}

// failWithCode writes the response for a coded failure returned by a
// module. Messages for invalid_argument carry the module's detail;
// everything else uses the safe default.
func failWithCode(c *fiber.Ctx, code, message string) error {
	f, ok := failures[code]
	if !ok {
		log.Printf("[api] Unknown failure code %q", code)
		return serverError(c)
	}
	if code != apperr.CodeInvalidArgument || message == "" {
		message = f.message
	}
	return c.Status(f.status).JSON(ErrorResponse{
		Error:   f.kind,
		Message: message,
	})
}

// serverError hides internal failures behind a generic response. The
// detail is logged server-side by the caller.
func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// badRequest writes a 400 with the given message.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}
