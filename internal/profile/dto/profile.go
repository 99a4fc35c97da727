package dto

type UpdateProfileRequest struct {
	FitnessGoals    *[]string `json:"fitness_goals"`
	ExperienceLevel *string   `json:"experience_level"`
}
