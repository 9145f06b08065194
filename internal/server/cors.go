package server

import "github.com/gofiber/fiber/v3"

// corsHeaders sets the same permissive CORS headers on every response,
// preflight or not, so browsers on any origin can call the chat endpoint.
func corsHeaders(c fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
	return c.Next()
}
