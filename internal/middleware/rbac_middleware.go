package middleware

import (
	"siap-cuti/internal/domain"
	"siap-cuti/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			abortWithAppError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     actor.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			abortWithAppError(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			abortWithAppError(c, apperror.ErrForbidden.WithDetails(map[string]string{
				"required": resource + ":" + action,
			}))
			return
		}
		c.Next()
	}
}
