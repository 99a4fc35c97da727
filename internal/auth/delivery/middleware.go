package delivery

import (
	"errors"
	"net/http"
	"strings"

	"fitness-backend/internal/auth/domain"
	"fitness-backend/internal/auth/usecase"
	"fitness-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session_token"

const (
	ContextUser         = "user"
	ContextUserID       = "userID"
	ContextSessionToken = "sessionToken"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)

		user, err := authUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnauthenticated):
				metrics.RecordAuthFailure("missing")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			case errors.Is(err, domain.ErrSessionExpiredOrInvalid):
				metrics.RecordAuthFailure("expired")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			default:
				metrics.RecordAuthFailure("error")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

// sessionToken reads the cookie first and falls back to a bearer header
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CurrentUser returns the user stored by AuthMiddleware, or nil
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
