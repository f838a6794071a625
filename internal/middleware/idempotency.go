package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyLockTTL = 30 * time.Second

var errRequestInProgress = apperror.New(
	apperror.CodeConflict,
	"Pengajuan Anda sedang diproses, mohon tunggu sebentar.",
	http.StatusConflict,
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a POST carrying the same
// Idempotency-Key for the same user and route. A concurrent duplicate gets 409.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L()).Named("middleware.idempotency")

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached cachedResponse
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			// Redis down: serve the request without dedup.
			logger.Warn("idempotency cache unavailable", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			abortWithAppError(c, errRequestInProgress)
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		bg := context.WithoutCancel(ctx)
		status := writer.Status()
		if status >= 200 && status < 300 && json.Valid(writer.body.Bytes()) {
			payload, _ := json.Marshal(cachedResponse{Status: status, Body: writer.body.Bytes()})
			if err := rdb.Set(bg, cacheKey, string(payload), ttl).Err(); err != nil {
				logger.Warn("failed to store idempotent response", zap.Error(err))
			}
		}
		if err := rdb.Del(bg, lockKey).Err(); err != nil {
			logger.Warn("failed to release idempotency lock", zap.Error(err))
		}
	}
}
