package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextRole   = "userRole"
)

// TokenCookieName is the httpOnly cookie the login endpoint sets
const TokenCookieName = "token"

// JWTAuthMiddleware validates the bearer token from the Authorization
// header or the token cookie and stores the claims on the context
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			extracted, err := auth.ExtractBearerToken(authHeader)
			if err == nil {
				tokenString = extracted
			}
		}
		if tokenString == "" {
			if cookie, err := c.Cookie(TokenCookieName); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			if err == auth.ErrExpiredToken {
				code = dto.ErrorCodeExpiredToken
			}
			abortUnauthorized(c, code, err.Error())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects requests whose token role is not in the allowed set.
// Must run after JWTAuthMiddleware.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		current, ok := role.(models.Role)
		if ok {
			for _, allowed := range roles {
				if current == allowed {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "insufficient permissions for this operation")))
	}
}

// GetUserID returns the authenticated user's id from the context
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// GetUserRole returns the authenticated user's role from the context
func GetUserRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		dto.NewErrorDetail(code, message)))
}
