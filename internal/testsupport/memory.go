// Package testsupport provides in-memory repositories and fake gateways for
// unit tests. Every repository counts the calls it receives.
package testsupport

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	authdomain "fitness-backend/internal/auth/domain"
	coachdomain "fitness-backend/internal/coach/domain"
	exercisedomain "fitness-backend/internal/exercise/domain"
	progressdomain "fitness-backend/internal/progress/domain"
	"fitness-backend/internal/storage"
	workoutdomain "fitness-backend/internal/workout/domain"

	"github.com/google/uuid"
)

// Counter tracks how many repository calls were made
type Counter struct {
	n atomic.Int64
}

func (c *Counter) hit()         { c.n.Add(1) }
func (c *Counter) Calls() int64 { return c.n.Load() }

type UserRepo struct {
	Counter
	mu    sync.Mutex
	users map[string]*authdomain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[string]*authdomain.User{}}
}

func (r *UserRepo) Create(_ context.Context, user *authdomain.User) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.FitnessGoals == nil {
		user.FitnessGoals = []string{}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*authdomain.User, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, id string, update authdomain.ProfileUpdate) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return authdomain.ErrUserNotFound
	}
	if update.FitnessGoals != nil {
		u.FitnessGoals = append([]string{}, (*update.FitnessGoals)...)
	}
	if update.ExperienceLevel != nil {
		u.ExperienceLevel = *update.ExperienceLevel
	}
	return nil
}

// Delete removes a user outright, leaving any sessions dangling
func (r *UserRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

type SessionRepo struct {
	Counter
	mu       sync.Mutex
	sessions []*authdomain.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

func (r *SessionRepo) Create(_ context.Context, session *authdomain.Session) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	cp := *session
	r.sessions = append(r.sessions, &cp)
	return nil
}

func (r *SessionRepo) FindActiveByToken(_ context.Context, token string, now time.Time) (*authdomain.Session, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.SessionToken == token && s.ExpiresAt.After(now) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *SessionRepo) DeleteByToken(_ context.Context, token string) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.sessions[:0]
	for _, s := range r.sessions {
		if s.SessionToken != token {
			kept = append(kept, s)
		}
	}
	r.sessions = kept
	return nil
}

// Len reports how many session rows are stored, expired ones included
func (r *SessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

type ExerciseRepo struct {
	Counter
	mu        sync.Mutex
	exercises []*exercisedomain.Exercise
}

func NewExerciseRepo() *ExerciseRepo {
	return &ExerciseRepo{}
}

func (r *ExerciseRepo) List(_ context.Context, filter exercisedomain.Filter) ([]*exercisedomain.Exercise, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*exercisedomain.Exercise{}
	for _, e := range r.exercises {
		if filter.Matches(*e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ExerciseRepo) Count(context.Context) (int64, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.exercises)), nil
}

func (r *ExerciseRepo) InsertMany(_ context.Context, exercises []*exercisedomain.Exercise) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range exercises {
		cp := *e
		r.exercises = append(r.exercises, &cp)
	}
	return nil
}

type WorkoutRepo struct {
	Counter
	mu       sync.Mutex
	workouts []*workoutdomain.Workout
}

func NewWorkoutRepo() *WorkoutRepo {
	return &WorkoutRepo{}
}

func (r *WorkoutRepo) Create(_ context.Context, workout *workoutdomain.Workout) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *workout
	r.workouts = append(r.workouts, &cp)
	return nil
}

func (r *WorkoutRepo) FindByIDForUser(_ context.Context, id, userID string) (*workoutdomain.Workout, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workouts {
		if w.ID == id && w.UserID == userID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *WorkoutRepo) ListByUser(_ context.Context, userID string, limit int) ([]*workoutdomain.Workout, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*workoutdomain.Workout{}
	for _, w := range r.workouts {
		if w.UserID == userID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *WorkoutRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, w := range r.workouts {
		if w.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *WorkoutRepo) CountByUserBetween(_ context.Context, userID string, from, to time.Time) (int64, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, w := range r.workouts {
		if w.UserID == userID && !w.Date.Before(from) && !w.Date.After(to) {
			n++
		}
	}
	return n, nil
}

type ProgressRepo struct {
	Counter
	mu      sync.Mutex
	entries []*progressdomain.Progress
}

func NewProgressRepo() *ProgressRepo {
	return &ProgressRepo{}
}

func (r *ProgressRepo) Create(_ context.Context, progress *progressdomain.Progress) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *progress
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *ProgressRepo) ListSince(_ context.Context, userID string, since time.Time) ([]*progressdomain.Progress, error) {
	r.hit()
	return r.list(userID, func(p *progressdomain.Progress) bool { return !p.Date.Before(since) }, 0), nil
}

func (r *ProgressRepo) ListRecent(_ context.Context, userID string, limit int) ([]*progressdomain.Progress, error) {
	r.hit()
	return r.list(userID, func(*progressdomain.Progress) bool { return true }, limit), nil
}

func (r *ProgressRepo) list(userID string, keep func(*progressdomain.Progress) bool, limit int) []*progressdomain.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*progressdomain.Progress{}
	for _, p := range r.entries {
		if p.UserID == userID && keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type ConversationRepo struct {
	Counter
	mu            sync.Mutex
	conversations []*coachdomain.Conversation
}

func NewConversationRepo() *ConversationRepo {
	return &ConversationRepo{}
}

func (r *ConversationRepo) Create(_ context.Context, conversation *coachdomain.Conversation) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *conversation
	r.conversations = append(r.conversations, &cp)
	return nil
}

func (r *ConversationRepo) ListByUser(_ context.Context, userID string, limit int) ([]*coachdomain.Conversation, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*coachdomain.Conversation{}
	for _, c := range r.conversations {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Store holds one in-memory repository per entity
type Store struct {
	Users         *UserRepo
	Sessions      *SessionRepo
	Exercises     *ExerciseRepo
	Workouts      *WorkoutRepo
	Progress      *ProgressRepo
	Conversations *ConversationRepo
}

func NewStore() *Store {
	return &Store{
		Users:         NewUserRepo(),
		Sessions:      NewSessionRepo(),
		Exercises:     NewExerciseRepo(),
		Workouts:      NewWorkoutRepo(),
		Progress:      NewProgressRepo(),
		Conversations: NewConversationRepo(),
	}
}

func (s *Store) Repositories() *storage.Repositories {
	return &storage.Repositories{
		Users:         s.Users,
		Sessions:      s.Sessions,
		Exercises:     s.Exercises,
		Workouts:      s.Workouts,
		Progress:      s.Progress,
		Conversations: s.Conversations,
	}
}

// Calls sums the calls made to every repository
func (s *Store) Calls() int64 {
	return s.Users.Calls() + s.Sessions.Calls() + s.Exercises.Calls() +
		s.Workouts.Calls() + s.Progress.Calls() + s.Conversations.Calls()
}
