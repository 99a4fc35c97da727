package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"fitness-backend/internal/workout/domain"
	"fitness-backend/internal/workout/dto"
	"fitness-backend/internal/workout/usecase"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler handles workout-related HTTP requests
type WorkoutHandler struct {
	workoutUsecase usecase.WorkoutUsecase
}

func NewWorkoutHandler(workoutUsecase usecase.WorkoutUsecase) *WorkoutHandler {
	return &WorkoutHandler{workoutUsecase: workoutUsecase}
}

// CreateWorkout logs a workout for the authenticated user
// POST /api/workouts
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req dto.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := h.workoutUsecase.CreateWorkout(c.Request.Context(), c.GetString("userID"), usecase.CreateWorkoutInput{
		Name:      req.Name,
		Exercises: req.Entries(),
		Duration:  req.Duration,
		Notes:     req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workout)
}

// GetWorkouts returns the caller's workouts, newest first
// GET /api/workouts?limit=20
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	workouts, err := h.workoutUsecase.ListWorkouts(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns one of the caller's workouts
// GET /api/workouts/:id
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutUsecase.GetWorkout(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workout)
}
