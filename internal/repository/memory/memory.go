// Package memory implements repository.Store with plain Go maps.
//
// Nothing survives a restart. One RWMutex guards every map and the shared id
// counter, since appending to a per-user list is a read-modify-write that must
// not interleave with another request.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sakif/monkey-intelligence/internal/apperror"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store holds users, per-user progress lists and per-teacher lesson lists.
type Store struct {
	mu       sync.RWMutex
	opts     repository.Options
	users    map[int64]*model.User
	progress map[int64][]model.GameProgress
	lessons  map[int64][]model.Lesson
	// currentID is the next id to hand out; shared by users, lessons and
	// (optionally) progress records.
	currentID int64
	now       func() time.Time
}

// New returns an empty Store. Ids start at 1.
func New(opts repository.Options) *Store {
	return &Store{
		opts:      opts,
		users:     make(map[int64]*model.User),
		progress:  make(map[int64][]model.GameProgress),
		lessons:   make(map[int64][]model.Lesson),
		currentID: 1,
		now:       time.Now,
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID() int64 {
	id := s.currentID
	s.currentID++
	return id
}

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *Store) GetUser(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", strconv.FormatInt(id, 10))
	}
	found := *u
	return &found, nil
}

// GetUserByUsername scans every user and returns the lowest id with an exact
// username match.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *model.User
	for _, u := range s.users {
		if u.Username == username && (match == nil || u.ID < match.ID) {
			match = u
		}
	}
	if match == nil {
		return nil, apperror.NotFound("user", username)
	}
	found := *match
	return &found, nil
}

func (s *Store) SaveProgress(_ context.Context, p *model.GameProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.AssignProgressIDs {
		p.ID = s.nextID()
	}
	s.progress[p.UserID] = append(s.progress[p.UserID], *p)
	return nil
}

func (s *Store) GetProgress(_ context.Context, userID int64) ([]model.GameProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.progress[userID]
	out := make([]model.GameProgress, len(list))
	copy(out, list)
	return out, nil
}

func (s *Store) CreateLesson(_ context.Context, l *model.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = s.nextID()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}
	s.lessons[l.TeacherID] = append(s.lessons[l.TeacherID], *l)
	return nil
}

func (s *Store) GetLessons(_ context.Context, teacherID int64) ([]model.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lessons[teacherID]
	out := make([]model.Lesson, len(list))
	copy(out, list)
	return out, nil
}

// Close is a no-op; it exists so Store satisfies repository.Store.
func (s *Store) Close() error { return nil }
