package delivery

import (
	"net/http"
	"strconv"

	"fitness-backend/internal/progress/dto"
	"fitness-backend/internal/progress/usecase"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressUsecase usecase.ProgressUsecase
}

func NewProgressHandler(progressUsecase usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{progressUsecase: progressUsecase}
}

// AddProgress records a snapshot for the authenticated user
// POST /api/progress
func (h *ProgressHandler) AddProgress(c *gin.Context) {
	var req dto.CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := h.progressUsecase.RecordProgress(c.Request.Context(), c.GetString("userID"), usecase.RecordProgressInput{
		Weight:       req.Weight,
		BodyFat:      req.BodyFat,
		Measurements: req.Measurements,
		Notes:        req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}

// GetProgress lists snapshots from the trailing window
// GET /api/progress?days=90
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecase.DefaultWindowDays)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
		return
	}

	entries, err := h.progressUsecase.ListProgress(c.Request.Context(), c.GetString("userID"), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
