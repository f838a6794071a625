package middleware

import (
	"siap-cuti/internal/domain"

	"github.com/gin-gonic/gin"
)

// CurrentActor returns the caller set by AuthMiddleware.
func CurrentActor(c *gin.Context) (domain.Actor, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: userID, Role: c.GetString("role")}, true
}
