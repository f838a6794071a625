package middleware

import (
	"errors"
	"fmt"
	"strings"

	autherrors "siap-cuti/internal/auth/errors"
	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/contextutil"
	"siap-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func abortWithAppError(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, err.Details)
	c.Abort()
}

// AuthMiddleware verifies the bearer token (or access_token cookie) and puts
// user_id and role on both the gin context and the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWithAppError(c, autherrors.ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWithAppError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWithAppError(c, autherrors.ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			abortWithAppError(c, autherrors.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("role", role)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userID)
		ctx = contextutil.WithRole(ctx, role)
		reqLogger := contextutil.GetLogger(ctx, zap.L())
		ctx = contextutil.WithLogger(ctx, reqLogger.With(zap.String("user_id", userID), zap.String("role", role)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
