package domain

type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is shared catalog data, never scoped to a user
type Exercise struct {
	ID           string     `json:"id" bson:"_id" gorm:"primaryKey"`
	Name         string     `json:"name" bson:"name" gorm:"not null"`
	Category     Category   `json:"category" bson:"category" gorm:"index"`
	MuscleGroups []string   `json:"muscle_groups" bson:"muscle_groups" gorm:"serializer:json"`
	Instructions string     `json:"instructions" bson:"instructions"`
	Difficulty   Difficulty `json:"difficulty" bson:"difficulty" gorm:"index"`
	Equipment    *string    `json:"equipment" bson:"equipment"`
}

// Filter narrows a catalog listing. Empty fields match everything; set fields
// must all match. Search is a typo-tolerant query applied after the exact
// filters.
type Filter struct {
	Category   Category
	Difficulty Difficulty
	Search     string
}

// Matches applies the exact-match fields only
func (f Filter) Matches(e Exercise) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && e.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// DefaultCatalog returns the entries seeded into an empty store. IDs are
// assigned at seed time.
func DefaultCatalog() []Exercise {
	equipment := func(s string) *string { return &s }
	return []Exercise{
		{
			Name:         "Push-ups",
			Category:     CategoryStrength,
			MuscleGroups: []string{"chest", "triceps", "shoulders"},
			Instructions: "Start in plank position, lower body until chest nearly touches floor, push back up.",
			Difficulty:   DifficultyBeginner,
			Equipment:    equipment("bodyweight"),
		},
		{
			Name:         "Squats",
			Category:     CategoryStrength,
			MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"},
			Instructions: "Stand with feet shoulder-width apart, lower body as if sitting back into chair, return to standing.",
			Difficulty:   DifficultyBeginner,
			Equipment:    equipment("bodyweight"),
		},
		{
			Name:         "Deadlift",
			Category:     CategoryStrength,
			MuscleGroups: []string{"hamstrings", "glutes", "lower back"},
			Instructions: "Stand with feet hip-width apart, bend at hips and knees to grip barbell, lift by extending hips and knees.",
			Difficulty:   DifficultyIntermediate,
			Equipment:    equipment("barbell"),
		},
		{
			Name:         "Running",
			Category:     CategoryCardio,
			MuscleGroups: []string{"legs", "cardiovascular"},
			Instructions: "Maintain steady pace, proper form with slight forward lean, land on midfoot.",
			Difficulty:   DifficultyBeginner,
			Equipment:    equipment("none"),
		},
		{
			Name:         "Plank",
			Category:     CategoryStrength,
			MuscleGroups: []string{"core", "shoulders"},
			Instructions: "Hold body in straight line from head to heels, engage core muscles.",
			Difficulty:   DifficultyBeginner,
			Equipment:    equipment("bodyweight"),
		},
	}
}
