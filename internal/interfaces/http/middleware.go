package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/caiomf/barbearia-api/pkg/logger"
)

// RequestID anexa um identificador único a cada requisição (header
// X-Request-ID, respeitado se o cliente já mandou um).
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Locals("request_id", rid)
		c.Set(fiber.HeaderXRequestID, rid)
		return c.Next()
	}
}

// AccessLog registra cada requisição concluída com método, rota, status e id.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		rid, _ := c.Locals("request_id").(string)
		log.Debug().
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("requisição atendida")
		return err
	}
}
