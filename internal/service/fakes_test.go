package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/sakif/monkey-intelligence/internal/apperror"
	"github.com/sakif/monkey-intelligence/internal/model"
)

// =========================================================================
// FAKE REPOSITORIES
// =========================================================================
//
// Hand-written in-memory fakes. Setting err makes every call fail, which is
// how the tests reach the service's error paths.

var errStoreDown = errors.New("store down")

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("user", strconv.FormatInt(id, 10))
	}
	found := *u
	return &found, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, apperror.NotFound("user", username)
}

type fakeProgressRepo struct {
	saved []model.GameProgress
	err   error
}

func (f *fakeProgressRepo) SaveProgress(_ context.Context, p *model.GameProgress) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, *p)
	return nil
}

func (f *fakeProgressRepo) GetProgress(_ context.Context, userID int64) ([]model.GameProgress, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.GameProgress, 0)
	for _, p := range f.saved {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeLessonRepo struct {
	lessons []model.Lesson
	nextID  int64
	err     error
}

func (f *fakeLessonRepo) CreateLesson(_ context.Context, l *model.Lesson) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	l.ID = f.nextID
	f.lessons = append(f.lessons, *l)
	return nil
}

func (f *fakeLessonRepo) GetLessons(_ context.Context, teacherID int64) ([]model.Lesson, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Lesson, 0)
	for _, l := range f.lessons {
		if l.TeacherID == teacherID {
			out = append(out, l)
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
