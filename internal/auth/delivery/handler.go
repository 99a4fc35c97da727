package delivery

import (
	"errors"
	"net/http"

	"fitness-backend/internal/auth/domain"
	"fitness-backend/internal/auth/dto"
	"fitness-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// SessionIDHeader carries the external session id for the exchange
const SessionIDHeader = "X-Session-ID"

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// GetSessionData exchanges an external session id for a user and session token
// GET /api/auth/session-data
func (h *AuthHandler) GetSessionData(c *gin.Context) {
	user, token, err := h.authUsecase.ExchangeSession(c.Request.Context(), c.GetHeader(SessionIDHeader))
	if err != nil {
		if errors.Is(err, domain.ErrSessionIDRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SessionDataResponse{User: user, SessionToken: token})
}

// Logout deletes the caller's session
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), c.GetString(ContextSessionToken)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}
