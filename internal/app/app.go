package app

import (
	"database/sql"
	"net/http"

	"siap-cuti/internal/config"
	"siap-cuti/internal/middleware"
	"siap-cuti/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const redisConnectRetries = 3

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func (i *infrastructure) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectDatabase(cfg *config.Config) (*infrastructure, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	return &infrastructure{gormDB: gormDB, sqlDB: sqlDB}, nil
}

// BuildApp connects infrastructure, installs global middleware and registers every module.
// Redis is optional: without it the dashboard is never cached and Idempotency-Key is ignored.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	deps, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, redisConnectRetries)
	if err != nil {
		logger.Warn("redis unavailable, continuing without cache and idempotency", zap.Error(err))
	} else {
		deps.rdb = rdb
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
	)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	if err := registerModules(router, cfg, deps); err != nil {
		deps.Close()
		return nil, err
	}

	return deps.Close, nil
}
