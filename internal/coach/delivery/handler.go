package delivery

import (
	"net/http"
	"strconv"

	authdelivery "fitness-backend/internal/auth/delivery"
	"fitness-backend/internal/coach/dto"
	"fitness-backend/internal/coach/usecase"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	coachUsecase usecase.CoachUsecase
}

func NewCoachHandler(coachUsecase usecase.CoachUsecase) *CoachHandler {
	return &CoachHandler{coachUsecase: coachUsecase}
}

// Ask forwards a question to the AI coach
// POST /api/ai/ask
func (h *CoachHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.coachUsecase.Ask(c.Request.Context(), authdelivery.CurrentUser(c), req.Question, req.Context)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AskResponse{Response: answer})
}

// ListConversations returns the caller's stored coach exchanges
// GET /api/ai/conversations?limit=20
func (h *CoachHandler) ListConversations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultConversationLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	conversations, err := h.coachUsecase.ListConversations(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, conversations)
}
