package main

import (
	"time"

	"siap-cuti/internal/app"
	"siap-cuti/internal/bootstrap"
	"siap-cuti/internal/config"
	"siap-cuti/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewStdoutAuditLogger("siap-cuti-api")
	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	); err != nil {
		logger.Error("http server stopped with error", zap.Error(err))
	}
}
