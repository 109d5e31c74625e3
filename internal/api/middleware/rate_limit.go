package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/pkg/redis"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// RateLimit enforces a fixed-window per-IP request budget backed by redis.
// A nil client or a redis error lets the request through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		count, err := rdb.IncrRequestCount(c.Request.Context(), key, window)
		if err != nil {
			c.Next()
			return
		}

		if count > int64(limit) {
			response.TooManyRequests(c, 10004, "trop de requêtes, réessayez plus tard")
			c.Abort()
			return
		}

		c.Next()
	}
}
