package leave

import (
	"time"

	"siap-cuti/internal/domain"
	"siap-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	jwtSecret string,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(jwtSecret))
	{
		submit := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate),
		}
		if rdb != nil {
			submit = append(submit, middleware.Idempotency(rdb, idempotencyTTL))
		}
		leaves.POST("", append(submit, handler.Submit)...)

		leaves.GET("/history", middleware.RateLimitByUser(3, 10), handler.History)
		leaves.GET("/unread-count", middleware.RateLimitByUser(5, 20), handler.UnreadCount)
		leaves.POST("/:id/read", middleware.RateLimitByUser(5, 20), handler.MarkRead)
		leaves.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)

		leaves.GET("",
			middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionReadAll),
			handler.List,
		)

		approve := middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove)
		leaves.PATCH("/:id/status", approve, handler.UpdateStatus)
		leaves.POST("/:id/approve", approve, handler.Approve)
		leaves.POST("/:id/reject", approve, handler.Reject)
	}
}
