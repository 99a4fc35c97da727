package usecase

import (
	"testing"
	"time"

	authdomain "fitness-backend/internal/auth/domain"
	progressdomain "fitness-backend/internal/progress/domain"
	workoutdomain "fitness-backend/internal/workout/domain"
	"fitness-backend/pkg/scalar"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPromptEmptyHistory(t *testing.T) {
	user := &authdomain.User{Name: "Bo", ExperienceLevel: authdomain.ExperienceBeginner}

	prompt := BuildSystemPrompt(user, nil, nil, nil)

	assert.Contains(t, prompt, "- Fitness Goals: Not specified")
	assert.Contains(t, prompt, "No recent workouts")
	assert.Contains(t, prompt, "No recent progress data")
	assert.NotContains(t, prompt, "Additional Context")
}

func TestBuildSystemPromptFormatsEntries(t *testing.T) {
	user := &authdomain.User{Name: "Bo", ExperienceLevel: authdomain.ExperienceAdvanced, FitnessGoals: []string{"strength"}}
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	bodyFat := 14.5

	workouts := []*workoutdomain.Workout{{
		Name: "Leg Day", Date: day, Duration: 45, Notes: "felt strong",
		Exercises: []workoutdomain.WorkoutExercise{{ExerciseID: "E1", Sets: 4, Reps: 8, Weight: 100}},
	}}
	progress := []*progressdomain.Progress{{
		Date: day, BodyFat: &bodyFat, Measurements: scalar.Map{"waist": scalar.Number(82)},
	}}

	prompt := BuildSystemPrompt(user, workouts, progress, scalar.Map{"injury": scalar.String("knee")})

	assert.Contains(t, prompt, "- 2025-02-03 Leg Day (45 min): E1 4x8 @ 100 | notes: felt strong")
	assert.Contains(t, prompt, "- 2025-02-03 body_fat=14.5 waist=82")
	assert.Contains(t, prompt, "Additional Context:\ninjury=knee")
}
