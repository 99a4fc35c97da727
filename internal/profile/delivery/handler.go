package delivery

import (
	"errors"
	"net/http"

	authdelivery "fitness-backend/internal/auth/delivery"
	authdomain "fitness-backend/internal/auth/domain"
	"fitness-backend/internal/profile/dto"
	"fitness-backend/internal/profile/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetProfile returns the authenticated user
// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, authdelivery.CurrentUser(c))
}

// UpdateProfile edits goals and experience level. Fields come from the JSON
// body or, failing that, from query parameters.
// PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if goals, ok := c.GetQueryArray("fitness_goals"); ok {
		req.FitnessGoals = &goals
	}
	if level, ok := c.GetQuery("experience_level"); ok {
		req.ExperienceLevel = &level
	}

	if c.Request.ContentLength > 0 {
		var body dto.UpdateProfileRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.FitnessGoals != nil {
			req.FitnessGoals = body.FitnessGoals
		}
		if body.ExperienceLevel != nil {
			req.ExperienceLevel = body.ExperienceLevel
		}
	}

	update := authdomain.ProfileUpdate{FitnessGoals: req.FitnessGoals}
	if req.ExperienceLevel != nil {
		level := authdomain.ExperienceLevel(*req.ExperienceLevel)
		update.ExperienceLevel = &level
	}

	if err := h.profileUsecase.UpdateProfile(c.Request.Context(), c.GetString("userID"), update); err != nil {
		if errors.Is(err, authdomain.ErrInvalidExperienceLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
