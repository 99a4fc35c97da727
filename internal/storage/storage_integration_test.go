//go:build integration

package storage

import (
	"context"
	"testing"
	"time"

	authdomain "fitness-backend/internal/auth/domain"
	coachdomain "fitness-backend/internal/coach/domain"
	exercisedomain "fitness-backend/internal/exercise/domain"
	progressdomain "fitness-backend/internal/progress/domain"
	workoutdomain "fitness-backend/internal/workout/domain"
	"fitness-backend/pkg/database"
	"fitness-backend/pkg/scalar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	mongocontainer "github.com/testcontainers/testcontainers-go/modules/mongodb"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestMongoRepositories(t *testing.T) {
	ctx := context.Background()

	container, err := mongocontainer.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, db, err := database.NewMongoConnection(ctx, uri, "fitness_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })
	require.NoError(t, database.EnsureMongoIndexes(ctx, db))

	runRepositoryContract(t, NewMongoRepositories(db))
}

func TestPostgresRepositories(t *testing.T) {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitness"),
		postgrescontainer.WithUsername("fitness"),
		postgrescontainer.WithPassword("fitness"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewPostgresConnection(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	runRepositoryContract(t, NewGormRepositories(db))
}

// runRepositoryContract checks the behaviour every backend must share
func runRepositoryContract(t *testing.T, repos *Repositories) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("users", func(t *testing.T) {
		user := &authdomain.User{Email: "ana@example.com", Name: "Ana", ExperienceLevel: authdomain.ExperienceBeginner}
		require.NoError(t, repos.Users.Create(ctx, user))
		require.NotEmpty(t, user.ID)

		found, err := repos.Users.FindByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, []string{}, found.FitnessGoals)

		missing, err := repos.Users.FindByID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)

		goals := []string{"mobility"}
		level := authdomain.ExperienceAdvanced
		require.NoError(t, repos.Users.UpdateProfile(ctx, user.ID, authdomain.ProfileUpdate{FitnessGoals: &goals}))
		require.NoError(t, repos.Users.UpdateProfile(ctx, user.ID, authdomain.ProfileUpdate{ExperienceLevel: &level}))

		updated, err := repos.Users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, goals, updated.FitnessGoals)
		assert.Equal(t, level, updated.ExperienceLevel)
	})

	t.Run("sessions expire lazily", func(t *testing.T) {
		session := &authdomain.Session{UserID: "u1", SessionToken: "tok-" + uuid.NewString(), ExpiresAt: now.Add(time.Hour), CreatedAt: now}
		require.NoError(t, repos.Sessions.Create(ctx, session))

		active, err := repos.Sessions.FindActiveByToken(ctx, session.SessionToken, now)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "u1", active.UserID)

		expired, err := repos.Sessions.FindActiveByToken(ctx, session.SessionToken, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Nil(t, expired)

		require.NoError(t, repos.Sessions.DeleteByToken(ctx, session.SessionToken))
		require.NoError(t, repos.Sessions.DeleteByToken(ctx, session.SessionToken))

		gone, err := repos.Sessions.FindActiveByToken(ctx, session.SessionToken, now)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("exercise catalog", func(t *testing.T) {
		count, err := repos.Exercises.Count(ctx)
		require.NoError(t, err)
		require.Zero(t, count)

		catalog := exercisedomain.DefaultCatalog()
		entries := make([]*exercisedomain.Exercise, len(catalog))
		for i := range catalog {
			catalog[i].ID = uuid.NewString()
			entries[i] = &catalog[i]
		}
		require.NoError(t, repos.Exercises.InsertMany(ctx, entries))

		all, err := repos.Exercises.List(ctx, exercisedomain.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 5)

		both, err := repos.Exercises.List(ctx, exercisedomain.Filter{Category: exercisedomain.CategoryStrength, Difficulty: exercisedomain.DifficultyBeginner})
		require.NoError(t, err)
		assert.Len(t, both, 3)
		for _, e := range both {
			assert.Equal(t, exercisedomain.CategoryStrength, e.Category)
			assert.Equal(t, exercisedomain.DifficultyBeginner, e.Difficulty)
		}
	})

	t.Run("workouts are owner scoped", func(t *testing.T) {
		for i, age := range []time.Duration{30 * 24 * time.Hour, 2 * 24 * time.Hour, time.Hour} {
			require.NoError(t, repos.Workouts.Create(ctx, &workoutdomain.Workout{
				ID:        uuid.NewString(),
				UserID:    "owner",
				Name:      []string{"old", "mid", "new"}[i],
				Date:      now.Add(-age),
				Exercises: []workoutdomain.WorkoutExercise{{ExerciseID: "E1", Sets: 4, Reps: 8, Weight: 100, RestTime: 60}},
				CreatedAt: now,
			}))
		}

		list, err := repos.Workouts.ListByUser(ctx, "owner", 2)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "new", list[0].Name)
		assert.Equal(t, "mid", list[1].Name)
		require.Len(t, list[0].Exercises, 1)
		assert.Equal(t, 100.0, list[0].Exercises[0].Weight)

		mine, err := repos.Workouts.FindByIDForUser(ctx, list[0].ID, "owner")
		require.NoError(t, err)
		require.NotNil(t, mine)

		foreign, err := repos.Workouts.FindByIDForUser(ctx, list[0].ID, "intruder")
		require.NoError(t, err)
		assert.Nil(t, foreign)

		total, err := repos.Workouts.CountByUser(ctx, "owner")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		week, err := repos.Workouts.CountByUserBetween(ctx, "owner", now.Add(-7*24*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), week)
	})

	t.Run("progress keeps measurements", func(t *testing.T) {
		weight := 80.5
		require.NoError(t, repos.Progress.Create(ctx, &progressdomain.Progress{
			ID:           uuid.NewString(),
			UserID:       "owner",
			Date:         now.AddDate(0, 0, -100),
			Measurements: scalar.Map{},
		}))
		require.NoError(t, repos.Progress.Create(ctx, &progressdomain.Progress{
			ID:           uuid.NewString(),
			UserID:       "owner",
			Date:         now,
			Weight:       &weight,
			Measurements: scalar.Map{"waist": scalar.Number(82), "unit": scalar.String("cm"), "flexed": scalar.Bool(true)},
		}))

		recent, err := repos.Progress.ListSince(ctx, "owner", now.AddDate(0, 0, -90))
		require.NoError(t, err)
		require.Len(t, recent, 1)
		require.NotNil(t, recent[0].Weight)
		assert.Equal(t, weight, *recent[0].Weight)
		assert.Equal(t, "flexed=true, unit=cm, waist=82", recent[0].Measurements.Format())

		latest, err := repos.Progress.ListRecent(ctx, "owner", 1)
		require.NoError(t, err)
		require.Len(t, latest, 1)
		assert.True(t, latest[0].Date.Equal(now))
	})

	t.Run("conversations", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.NoError(t, repos.Conversations.Create(ctx, &coachdomain.Conversation{
				ID:        uuid.NewString(),
				UserID:    "owner",
				SessionID: coachdomain.SessionIDFor("owner"),
				Messages: []coachdomain.Message{
					{Role: coachdomain.RoleUser, Content: "q", Timestamp: now.Format(time.RFC3339)},
					{Role: coachdomain.RoleAssistant, Content: "a", Timestamp: now.Format(time.RFC3339)},
				},
				CreatedAt: now.Add(time.Duration(i) * time.Minute),
			}))
		}

		list, err := repos.Conversations.ListByUser(ctx, "owner", 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
		assert.Len(t, list[0].Messages, 2)
	})
}
