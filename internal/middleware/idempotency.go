package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"
	idempotencyLockTTL  = 30 * time.Second
)

// Idempotency replays the cached response of a POST carrying a known Idempotency-Key and
// rejects a duplicate that arrives while the first one is still running.
// The handler stores the response under IdempotencyCacheKey and releases IdempotencyLockKey.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id_validated")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// redis down: process the request without the guarantee rather than failing it
			c.Next()
			return
		}
		if !isNew {
			response.AbortWithError(c, ErrInProgress)
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}
