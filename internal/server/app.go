package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Options struct {
	AllowOrigins string
	Middleware   []fiber.Handler
}

// NewApp builds the fiber app with the shared middleware chain.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "process-mining-service",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
		BodyLimit:             64 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(AccessLog())
	if opts.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, " + HeaderRequestID,
		}))
	}
	for _, mw := range opts.Middleware {
		app.Use(mw)
	}

	return app
}

// NotFound must be registered after every route.
func NotFound(c *fiber.Ctx) error {
	return Fail(c, fiber.StatusNotFound, "not_found", fmt.Errorf("route %s %s not found", c.Method(), c.Path()))
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code := "internal_server_error"
		switch {
		case ferr.Code == fiber.StatusNotFound:
			code = "not_found"
		case ferr.Code < fiber.StatusInternalServerError:
			code = "bad_request"
		}
		return Fail(c, ferr.Code, code, errors.New(ferr.Message))
	}
	return Internal(c, err)
}
