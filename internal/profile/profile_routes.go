package profile

import (
	"siap-cuti/internal/domain"
	"siap-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware(jwtSecret))
	{
		profile.GET("/me", middleware.RateLimitByUser(3, 10), handler.GetMe)

		profile.PUT("/me",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceProfile, domain.ActionUpdate),
			handler.Update,
		)

		profile.PUT("/me/password",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceProfile, domain.ActionUpdate),
			handler.ChangePassword,
		)
	}
}
