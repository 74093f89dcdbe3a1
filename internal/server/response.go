package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Envelope is the body of every API response.
// @Description Standard response envelope
type Envelope struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty" example:"unknown dimension \"foo\""`
	Code    string `json:"code,omitempty" example:"invalid_dimension"`
}

func OK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Data: data})
}

func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// Fail writes an error envelope. code is a stable machine-readable label.
func Fail(c *fiber.Ctx, status int, code string, err error) error {
	env := Envelope{Success: false, Code: code}
	if err != nil {
		env.Error = err.Error()
	}
	return c.Status(status).JSON(env)
}

// Internal logs err and hides it from the client.
func Internal(c *fiber.Ctx, err error) error {
	if err != nil {
		id, _ := c.Locals("request_id").(string)
		log.Error().Err(err).Str("path", c.Path()).Str("request_id", id).Msg("request failed")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Success: false,
		Code:    "internal_server_error",
		Error:   "internal server error",
	})
}
