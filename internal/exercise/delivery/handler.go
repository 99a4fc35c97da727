package delivery

import (
	"net/http"

	"fitness-backend/internal/exercise/domain"
	"fitness-backend/internal/exercise/usecase"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	exerciseUsecase usecase.ExerciseUsecase
}

func NewExerciseHandler(exerciseUsecase usecase.ExerciseUsecase) *ExerciseHandler {
	return &ExerciseHandler{exerciseUsecase: exerciseUsecase}
}

// GetExercises lists the catalog
// GET /api/exercises?category=strength&difficulty=beginner&search=squat
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	filter := domain.Filter{
		Category:   domain.Category(c.Query("category")),
		Difficulty: domain.Difficulty(c.Query("difficulty")),
		Search:     c.Query("search"),
	}

	exercises, err := h.exerciseUsecase.ListExercises(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, exercises)
}
