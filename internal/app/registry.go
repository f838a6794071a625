package app

import (
	"siap-cuti/internal/auth"
	"siap-cuti/internal/balance"
	"siap-cuti/internal/config"
	"siap-cuti/internal/leave"
	"siap-cuti/internal/messaging/kafka"
	"siap-cuti/internal/notification"
	"siap-cuti/internal/profile"
	"siap-cuti/internal/rbac"
	"siap-cuti/internal/rbac/infra"
	"siap-cuti/internal/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newDispatcher(cfg config.MailConfig) notification.Dispatcher {
	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
	})
	return notification.NewDispatcher(mailer, notification.SenderConfig{
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		SMTPHost:    cfg.Host,
	})
}

func registerModules(router *gin.Engine, cfg *config.Config, deps *infrastructure) error {
	logger := zap.L()

	// --- Repositories ---
	profileRepo := profile.NewRepository(deps.gormDB)
	balanceRepo := balance.NewRepository(deps.gormDB)
	leaveRepo := leave.NewRepository(deps.gormDB)
	reportRepo := report.NewRepository(deps.gormDB)
	outboxRepo := kafka.NewOutboxRepository(deps.sqlDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	authService := auth.NewService(profileRepo, cfg.JWT.Secret, cfg.JWT.Expiry, logger)
	profileService := profile.NewService(profileRepo, logger)
	balanceService := balance.NewService(balanceRepo, cfg.Timezone, logger)
	reportService := report.NewService(reportRepo, deps.rdb, report.Config{
		Location: cfg.Timezone,
		CacheTTL: cfg.Cache.DashboardTTL,
	}, logger)
	leaveService := leave.NewService(
		deps.sqlDB,
		leaveRepo,
		outboxRepo,
		balanceService,
		newDispatcher(cfg.Mail),
		reportService,
		rbacService,
		logger,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction, cfg.JWT.Expiry)
	profileHandler := profile.NewHandler(profileService, logger)
	balanceHandler := balance.NewHandler(balanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		profile.RegisterRoutes(api, profileHandler, rbacService, cfg.JWT.Secret)
		balance.RegisterRoutes(api, balanceHandler, rbacService, cfg.JWT.Secret)
		leave.RegisterRoutes(api, leaveHandler, rbacService, deps.rdb, cfg.JWT.Secret)
		report.RegisterRoutes(api, reportHandler, rbacService, cfg.JWT.Secret)
		rbac.RegisterRoutes(api, rbacHandler, cfg.JWT.Secret)
	}

	return nil
}
