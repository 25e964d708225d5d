package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cordwain/internal/application/review"
	"cordwain/internal/infrastructure/auth"
	"cordwain/internal/shared/logger"
	"cordwain/internal/shared/utils"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
	ContextKeyUserRole = "user_role"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserName, claims.Name)
		c.Set(ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// UserID returns the authenticated user's id from the gin context.
func UserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if uid, ok := id.(uint); ok {
			return uid
		}
	}
	return 0
}

// UserName returns the authenticated user's display name.
func UserName(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUserName); exists {
		if s, ok := name.(string); ok {
			return s
		}
	}
	return ""
}

// UserRole returns the viewer's role. Unknown or missing roles fall back
// to supplier, the least-privileged rendering default.
func UserRole(c *gin.Context) review.Role {
	if role, exists := c.Get(ContextKeyUserRole); exists {
		if s, ok := role.(string); ok {
			switch review.Role(s) {
			case review.RoleInternal, review.RoleAdmin, review.RoleSupplier:
				return review.Role(s)
			}
		}
	}
	return review.RoleSupplier
}
