package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// requestObserver lo implementa *metrics.Metrics.
type requestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// RequestLogger emite una línea estructurada por petición. Las respuestas 5xx salen en nivel error.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("company_id", GetCompanyID(c)).
			Str("user_id", GetUserID(c)).
			Msg("petición HTTP")
		return err
	}
}

// Metrics registra cada petición usando la ruta registrada (ej. /api/products/:id) para acotar la cardinalidad.
func Metrics(obs requestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		obs.ObserveRequest(c.Method(), c.Route().Path, responseStatus(c, err), time.Since(start))
		return err
	}
}

// responseStatus status final; si el handler devolvió un *fiber.Error aún no escrito se usa su código.
func responseStatus(c *fiber.Ctx, err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	if err != nil {
		return fiber.StatusInternalServerError
	}
	return c.Response().StatusCode()
}
