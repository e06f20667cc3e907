package middleware

import (
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
)

// slowRequest é o limite a partir do qual a requisição é registrada como warning
const slowRequest = 2 * time.Second

// RequestLogger mede o tempo de resposta de cada requisição e registra no zap
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			// o error handler ainda não rodou; usa o status que ele vai devolver
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		reqLog := log.With("request_id", c.GetRespHeader(fiber.HeaderXRequestID))
		if userID := UserID(c); userID != "" {
			reqLog = reqLog.With("user_id", userID)
		}

		fields := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", duration,
		}
		if query := c.Request().URI().QueryArgs().String(); query != "" {
			fields = append(fields, "query", query)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			reqLog.Error("request failed", append(fields, "error", err)...)
		case duration > slowRequest:
			reqLog.Warn("slow request", fields...)
		default:
			reqLog.Debug("request", fields...)
		}
		return err
	}
}
