package balance

import (
	"siap-cuti/internal/domain"
	"siap-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	balances := r.Group("/balances")
	balances.Use(middleware.AuthMiddleware(jwtSecret))
	{
		balances.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceBalance, domain.ActionReadOwn),
			handler.GetMine,
		)
	}
}
