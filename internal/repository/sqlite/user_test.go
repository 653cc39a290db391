package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sakif/monkey-intelligence/internal/apperror"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/repository"
)

// newTestDB opens a fresh in-memory database and closes it when the test ends.
func newTestDB(t *testing.T, opts repository.Options) *DB {
	t.Helper()
	db, err := New(opts)
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Password: "$2a$04$hash",
		Role:     model.RoleStudent,
		Name:     "Test " + username,
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// =========================================================================
// USER TESTS
// =========================================================================

func TestUserCreate(t *testing.T) {
	db := newTestDB(t, repository.Options{})

	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")

	if first.ID != 1 {
		t.Errorf("first.ID = %d, want 1", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("second.ID = %d, want 2", second.ID)
	}
}

func TestUserGetByID(t *testing.T) {
	db := newTestDB(t, repository.Options{})
	created := createTestUser(t, db, "getbyid_user")

	found, err := db.GetUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if *found != *created {
		t.Errorf("GetUser() = %+v, want %+v", found, created)
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	db := newTestDB(t, repository.Options{})

	_, err := db.GetUser(context.Background(), 404)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetUser() error = %v, want ErrNotFound", err)
	}
}

func TestUserGetByUsername(t *testing.T) {
	db := newTestDB(t, repository.Options{})
	created := createTestUser(t, db, "lookup_user")

	found, err := db.GetUserByUsername(context.Background(), "lookup_user")
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}

	_, err = db.GetUserByUsername(context.Background(), "nobody")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetUserByUsername() error = %v, want ErrNotFound", err)
	}
}

// =========================================================================
// PROGRESS TESTS
// =========================================================================

func TestSaveAndGetProgress(t *testing.T) {
	db := newTestDB(t, repository.Options{})
	completed := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	for _, score := range []int{4, 10} {
		p := &model.GameProgress{UserID: 3, GameType: "math_easy", Score: score, CompletedAt: completed}
		if err := db.SaveProgress(context.Background(), p); err != nil {
			t.Fatalf("SaveProgress() error = %v", err)
		}
		if p.ID != 0 {
			t.Errorf("SaveProgress() set ID = %d, want input unchanged", p.ID)
		}
	}

	list, err := db.GetProgress(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetProgress() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].Score != 4 || list[1].Score != 10 {
		t.Errorf("scores = [%d %d], want [4 10]", list[0].Score, list[1].Score)
	}
	if !list[0].CompletedAt.Equal(completed) {
		t.Errorf("CompletedAt = %v, want %v", list[0].CompletedAt, completed)
	}
}

func TestGetProgress_Empty(t *testing.T) {
	db := newTestDB(t, repository.Options{})

	list, err := db.GetProgress(context.Background(), 77)
	if err != nil {
		t.Fatalf("GetProgress() error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("GetProgress() = %#v, want empty slice", list)
	}
}

func TestSaveProgress_AssignIDs(t *testing.T) {
	db := newTestDB(t, repository.Options{AssignProgressIDs: true})
	user := createTestUser(t, db, "scorer")

	p := &model.GameProgress{UserID: user.ID, GameType: "math_hard", Score: 6, CompletedAt: time.Now()}
	if err := db.SaveProgress(context.Background(), p); err != nil {
		t.Fatalf("SaveProgress() error = %v", err)
	}
	if p.ID != user.ID+1 {
		t.Errorf("progress ID = %d, want %d", p.ID, user.ID+1)
	}
}

// =========================================================================
// LESSON TESTS
// =========================================================================

func TestCreateAndGetLessons(t *testing.T) {
	db := newTestDB(t, repository.Options{})
	teacher := createTestUser(t, db, "teacher")

	lesson := &model.Lesson{
		TeacherID:   teacher.ID,
		Title:       "Calculus for Year 12",
		Content:     "Objectives:\n- Understand key concepts of Calculus",
		AIGenerated: true,
	}
	if err := db.CreateLesson(context.Background(), lesson); err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}
	if lesson.ID != teacher.ID+1 {
		t.Errorf("lesson.ID = %d, want %d (shared counter)", lesson.ID, teacher.ID+1)
	}
	if lesson.CreatedAt.IsZero() {
		t.Error("CreateLesson() did not default CreatedAt")
	}

	list, err := db.GetLessons(context.Background(), teacher.ID)
	if err != nil {
		t.Fatalf("GetLessons() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	got := list[0]
	if got.Title != lesson.Title || got.Content != lesson.Content || !got.AIGenerated {
		t.Errorf("GetLessons()[0] = %+v, want %+v", got, lesson)
	}
}

func TestGetLessons_Empty(t *testing.T) {
	db := newTestDB(t, repository.Options{})

	list, err := db.GetLessons(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetLessons() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("GetLessons() = %+v, want empty", list)
	}
}

func TestNew_StartsEmpty(t *testing.T) {
	first := newTestDB(t, repository.Options{})
	createTestUser(t, first, "only_in_first")

	second := newTestDB(t, repository.Options{})
	if _, err := second.GetUserByUsername(context.Background(), "only_in_first"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second database should be empty, got err = %v", err)
	}
}
