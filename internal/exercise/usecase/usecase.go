package usecase

import (
	"context"
	"sort"
	"strings"

	"fitness-backend/internal/exercise/domain"
	"fitness-backend/internal/exercise/repository"
	"fitness-backend/pkg/fuzzy"

	"github.com/google/uuid"
)

// Search weights: a hit on the name outranks muscles, which outrank equipment
const (
	nameWeight      = 100
	muscleWeight    = 40
	equipmentWeight = 20
)

// ExerciseUsecase exposes the shared exercise catalog
type ExerciseUsecase interface {
	ListExercises(ctx context.Context, filter domain.Filter) ([]*domain.Exercise, error)

	// SeedCatalog inserts the default catalog when the store holds no
	// exercises. It reports whether anything was inserted.
	SeedCatalog(ctx context.Context) (bool, error)
}

type exerciseUsecase struct {
	repo repository.ExerciseRepository
}

func NewExerciseUsecase(repo repository.ExerciseRepository) ExerciseUsecase {
	return &exerciseUsecase{repo: repo}
}

func (u *exerciseUsecase) ListExercises(ctx context.Context, filter domain.Filter) ([]*domain.Exercise, error) {
	exercises, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []*domain.Exercise{}
	}
	if strings.TrimSpace(filter.Search) == "" {
		return exercises, nil
	}
	return search(exercises, filter.Search), nil
}

// search keeps the entries matching query, best match first
func search(exercises []*domain.Exercise, query string) []*domain.Exercise {
	type hit struct {
		exercise *domain.Exercise
		score    float64
	}

	hits := make([]hit, 0, len(exercises))
	for _, e := range exercises {
		fields := []fuzzy.Field{
			{Text: e.Name, Weight: nameWeight},
			{Text: strings.Join(e.MuscleGroups, " "), Weight: muscleWeight},
		}
		if e.Equipment != nil {
			fields = append(fields, fuzzy.Field{Text: *e.Equipment, Weight: equipmentWeight})
		}
		if score := fuzzy.Score(query, fields...); score > 0 {
			hits = append(hits, hit{exercise: e, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]*domain.Exercise, len(hits))
	for i, h := range hits {
		out[i] = h.exercise
	}
	return out
}

func (u *exerciseUsecase) SeedCatalog(ctx context.Context) (bool, error) {
	count, err := u.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	catalog := domain.DefaultCatalog()
	entries := make([]*domain.Exercise, len(catalog))
	for i := range catalog {
		catalog[i].ID = uuid.New().String()
		entries[i] = &catalog[i]
	}
	if err := u.repo.InsertMany(ctx, entries); err != nil {
		return false, err
	}
	return true, nil
}
