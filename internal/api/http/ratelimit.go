package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-service/internal/config"
	"github.com/spec-kit/course-service/internal/persistence"
	apperrors "github.com/spec-kit/course-service/pkg/util"
)

// AuthRateLimiter bounds authentication attempts per client IP using a
// redis fixed window. When redis is unreachable the request is allowed;
// the limiter is a soft dependency.
func AuthRateLimiter(rdb *persistence.Redis, logger *zap.Logger, cfg config.RateLimitConfig) fiber.Handler {
	window := time.Duration(cfg.WindowSeconds) * time.Second

	return func(c *fiber.Ctx) error {
		if rdb == nil || rdb.Client == nil || cfg.MaxAttempts <= 0 {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:auth:%s", c.IP())
		ctx := c.Context()

		count, err := rdb.Client.Incr(ctx, key).Result()
		if err != nil {
			logger.Debug("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 && window > 0 {
			_ = rdb.Client.Expire(ctx, key, window).Err()
		}
		if count > int64(cfg.MaxAttempts) {
			return apperrors.NewDomainError(
				"RATE_LIMITED",
				"too many authentication attempts, please try again later",
				fiber.StatusTooManyRequests,
				nil,
			)
		}
		return c.Next()
	}
}
