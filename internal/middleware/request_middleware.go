package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"grover-graphql/pkg/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestContext tags the request with an id and stores a request scoped
// logger in the user context for downstream handlers and services.
func RequestContext(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Reuse the caller's id when it is a valid UUID
		requestID := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)
		c.Locals("request_id", requestID)

		log := base.With(zap.String("request_id", requestID))
		c.SetUserContext(logger.WithContext(c.UserContext(), log))

		return c.Next()
	}
}

// AccessLog writes one line per request.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		log := logger.FromContext(c.UserContext())
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		switch {
		case err != nil && status >= fiber.StatusInternalServerError:
			log.Error("request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
		return err
	}
}

// RequestID returns the id set by RequestContext.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("request_id").(string)
	return id
}
