// Package repository declares the storage contracts used by the service layer.
//
// Implementations live in sub-packages (memory, sqlite). Every implementation
// draws user and lesson ids from one counter shared across entity types, so ids
// are unique and increasing within the process but not dense per type.
package repository

import (
	"context"

	"github.com/sakif/monkey-intelligence/internal/model"
)

type UserRepository interface {
	// CreateUser assigns the next id and stores the user. The caller's struct
	// is updated in place.
	CreateUser(ctx context.Context, user *model.User) error
	// GetUser returns apperror.ErrNotFound when no user has the id.
	GetUser(ctx context.Context, id int64) (*model.User, error)
	// GetUserByUsername matches the username exactly and returns
	// apperror.ErrNotFound when nobody has it.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type ProgressRepository interface {
	// SaveProgress appends p to its user's list and leaves p unchanged unless
	// the store was built with progress id assignment enabled.
	SaveProgress(ctx context.Context, p *model.GameProgress) error
	// GetProgress returns the user's records in insertion order, or an empty
	// (non-nil) slice when none were recorded.
	GetProgress(ctx context.Context, userID int64) ([]model.GameProgress, error)
}

type LessonRepository interface {
	// CreateLesson assigns the next id, defaults CreatedAt to now when zero and
	// appends the lesson to its teacher's list.
	CreateLesson(ctx context.Context, l *model.Lesson) error
	// GetLessons returns the teacher's lessons in insertion order, or an empty
	// (non-nil) slice.
	GetLessons(ctx context.Context, teacherID int64) ([]model.Lesson, error)
}

// Store is the full storage surface owned by the process entry point.
type Store interface {
	UserRepository
	ProgressRepository
	LessonRepository
	Close() error
}

// Options tune behavior shared by every Store implementation.
type Options struct {
	// AssignProgressIDs makes SaveProgress draw an id from the shared counter
	// like CreateUser and CreateLesson do. Off by default: saved progress is
	// echoed back exactly as given.
	AssignProgressIDs bool
}
