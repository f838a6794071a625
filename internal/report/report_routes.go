package report

import (
	"siap-cuti/internal/domain"
	"siap-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	reports := r.Group("/reports")
	reports.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, domain.ResourceReport, domain.ActionRead),
	)
	{
		reports.GET("/dashboard", handler.Dashboard)
		reports.GET("/monthly", handler.Monthly)
		reports.GET("/annual", handler.Annual)
	}
}
