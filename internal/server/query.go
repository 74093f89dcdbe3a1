package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QueryList collects a query parameter given repeatedly or comma separated.
func QueryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
