package utils

import (
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logging"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the body of every API response.
type Envelope struct {
	IsSuccess bool        `json:"isSuccess"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
}

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, body Envelope) error {
	return c.Status(status).JSON(body)
}

// Success sends a 200 envelope carrying data.
func Success(c *fiber.Ctx, data interface{}, message ...string) error {
	return Respond(c, fiber.StatusOK, Envelope{IsSuccess: true, Data: data, Message: first(message)})
}

// Created sends a 201 envelope carrying data.
func Created(c *fiber.Ctx, data interface{}, message ...string) error {
	return Respond(c, fiber.StatusCreated, Envelope{IsSuccess: true, Data: data, Message: first(message)})
}

// Fail sends an error envelope with an explicit status.
func Fail(c *fiber.Ctx, status int, errMsg string, message ...string) error {
	return Respond(c, status, Envelope{IsSuccess: false, Error: errMsg, Message: first(message)})
}

// Unauthorized sends a 401 envelope.
func Unauthorized(c *fiber.Ctx, errMsg string, message ...string) error {
	return Fail(c, fiber.StatusUnauthorized, errMsg, message...)
}

// Error renders err with the status of its kind. Store and foreign errors are
// logged and hidden behind a generic message.
func Error(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logging.Default.LogError(err)
		return Fail(c, status, "Internal server error")
	}

	var de *apperrors.DomainError
	if apperrors.As(err, &de) {
		return Fail(c, status, de.Message)
	}
	return Fail(c, status, err.Error())
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
