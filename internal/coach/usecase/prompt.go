package usecase

import (
	"fmt"
	"strconv"
	"strings"

	authdomain "fitness-backend/internal/auth/domain"
	progressdomain "fitness-backend/internal/progress/domain"
	workoutdomain "fitness-backend/internal/workout/domain"
	"fitness-backend/pkg/scalar"
)

const dateLayout = "2006-01-02"

// BuildSystemPrompt renders the coaching context sent with every question.
// It is rebuilt from current data on each call.
func BuildSystemPrompt(user *authdomain.User, workouts []*workoutdomain.Workout, progress []*progressdomain.Progress, extra scalar.Map) string {
	goals := "Not specified"
	if len(user.FitnessGoals) > 0 {
		goals = strings.Join(user.FitnessGoals, ", ")
	}

	var b strings.Builder
	b.WriteString("You are an expert fitness coach and personal trainer. Help the user with their fitness journey.\n\n")
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", user.Name)
	fmt.Fprintf(&b, "- Experience Level: %s\n", user.ExperienceLevel)
	fmt.Fprintf(&b, "- Fitness Goals: %s\n\n", goals)

	b.WriteString("Recent Workout History:\n")
	if len(workouts) == 0 {
		b.WriteString("No recent workouts\n")
	}
	for _, w := range workouts {
		b.WriteString(formatWorkout(w))
		b.WriteByte('\n')
	}

	b.WriteString("\nRecent Progress:\n")
	if len(progress) == 0 {
		b.WriteString("No recent progress data\n")
	}
	for _, p := range progress {
		b.WriteString(formatProgress(p))
		b.WriteByte('\n')
	}

	if len(extra) > 0 {
		fmt.Fprintf(&b, "\nAdditional Context:\n%s\n", extra.Format())
	}

	b.WriteString("\nProvide helpful, encouraging, and safe fitness advice. Always recommend consulting with healthcare professionals for medical concerns.\n")
	return b.String()
}

func formatWorkout(w *workoutdomain.Workout) string {
	entries := make([]string, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		entry := fmt.Sprintf("%s %dx%d", e.ExerciseID, e.Sets, e.Reps)
		if e.Weight > 0 {
			entry += " @ " + strconv.FormatFloat(e.Weight, 'f', -1, 64)
		}
		if e.Duration > 0 {
			entry += fmt.Sprintf(" for %ds", e.Duration)
		}
		entries = append(entries, entry)
	}

	line := fmt.Sprintf("- %s %s", w.Date.Format(dateLayout), w.Name)
	if w.Duration > 0 {
		line += fmt.Sprintf(" (%d min)", w.Duration)
	}
	if len(entries) > 0 {
		line += ": " + strings.Join(entries, "; ")
	}
	if w.Notes != "" {
		line += " | notes: " + w.Notes
	}
	return line
}

func formatProgress(p *progressdomain.Progress) string {
	parts := []string{"- " + p.Date.Format(dateLayout)}
	if p.Weight != nil {
		parts = append(parts, "weight="+strconv.FormatFloat(*p.Weight, 'f', -1, 64))
	}
	if p.BodyFat != nil {
		parts = append(parts, "body_fat="+strconv.FormatFloat(*p.BodyFat, 'f', -1, 64))
	}
	if m := p.Measurements.Format(); m != "" {
		parts = append(parts, m)
	}
	if p.Notes != "" {
		parts = append(parts, "notes: "+p.Notes)
	}
	return strings.Join(parts, " ")
}
