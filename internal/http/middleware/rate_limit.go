package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// NewRateLimitStore выбирает хранилище счётчиков.
// С redisAddr лимит общий для всех инстансов, без него процесс-локальный.
func NewRateLimitStore(redisAddr string) (limiter.Store, error) {
	if redisAddr == "" {
		return memory.NewStore(), nil
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "renovateiq:ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("rate limit: redis store: %w", err)
	}
	return store, nil
}

// RateLimitMiddleware ограничивает количество запросов с одного IP.
// По умолчанию: 300 запросов за 15 минут.
func RateLimitMiddleware(store limiter.Store, limit int64, period time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 300
	}
	if period <= 0 {
		period = 15 * time.Minute
	}

	instance := limiter.New(store, limiter.Rate{Period: period, Limit: limit})

	return func(c *gin.Context) {
		lctx, err := instance.Get(c, c.ClientIP())
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", lctx.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", lctx.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", lctx.Reset))

		if lctx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later.",
			})
			return
		}

		c.Next()
	}
}
