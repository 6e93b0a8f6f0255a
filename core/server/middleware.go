package server

import (
	"runtime"
	"time"

	"insightflow-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// requestLogger logs every request with the RayID attached.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()

		err := c.Next()
		if err != nil {
			l.Error("Request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return err
		}

		l.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return nil
	}
}

// panicLogger reports recovered panics through zap.
func panicLogger(logg *zap.Logger) func(c *fiber.Ctx, e any) {
	return func(c *fiber.Ctx, e any) {
		buf := make([]byte, 4096)
		buf = buf[:runtime.Stack(buf, false)]
		logger.WithRayID(logg, c).Error("Recovered from panic",
			zap.Any("panic", e),
			zap.ByteString("stack", buf),
		)
	}
}
