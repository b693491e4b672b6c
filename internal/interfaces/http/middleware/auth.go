package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gastrack/internal/domain/user"
	"gastrack/internal/infrastructure/auth"
	"gastrack/internal/shared/logger"
	"gastrack/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService  *auth.JWTService
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, sessionRepo user.SessionRepository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// RequireAuth verifies the bearer token and checks the backing session is
// still active, so a logout invalidates the token before it expires.
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

		session, err := m.sessionRepo.GetByID(c.Request.Context(), claims.SessionID)
		if err != nil {
			m.logger.Errorw("failed to load session", "error", err, "session_id", claims.SessionID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}
		if session == nil || !session.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session expired or revoked")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("session_id", claims.SessionID)
		c.Set("user_role", claims.Role.String())

		c.Next()
	}
}
