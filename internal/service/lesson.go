package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/monkey-intelligence/internal/apperror"
	"github.com/sakif/monkey-intelligence/internal/lesson"
	"github.com/sakif/monkey-intelligence/internal/metrics"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/repository"
)

// MsgMissingFields is the validation message for an incomplete generate request.
const MsgMissingFields = "Missing required fields"

// LessonService generates lesson plans and stores the ones teachers keep.
type LessonService struct {
	repo      repository.LessonRepository
	generator *lesson.Generator
	logger    *slog.Logger
}

func NewLessonService(repo repository.LessonRepository, generator *lesson.Generator, logger *slog.Logger) *LessonService {
	return &LessonService{repo: repo, generator: generator, logger: logger}
}

// Generate suggests a plan for subject and yearGroup. Both are required.
// The plan is not stored.
func (s *LessonService) Generate(_ context.Context, subject, yearGroup string) (model.LessonPlan, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(yearGroup) == "" {
		return model.LessonPlan{}, apperror.ValidationFailed("subject", MsgMissingFields)
	}

	level := lesson.LevelFor(yearGroup)
	plan := s.generator.Generate(subject, yearGroup)

	metrics.IncLessonGenerated(string(level))
	s.logger.Info("lesson generated",
		slog.String("subject", subject),
		slog.String("yearGroup", yearGroup),
		slog.String("level", string(level)),
		slog.String("title", plan.Title),
	)
	return plan, nil
}

// Create stores a lesson and returns it with its id and creation time.
func (s *LessonService) Create(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	if err := s.repo.CreateLesson(ctx, l); err != nil {
		return nil, fmt.Errorf("service/lesson: creating for teacher %d: %w", l.TeacherID, err)
	}

	s.logger.Info("lesson saved",
		slog.Int64("id", l.ID),
		slog.Int64("teacherID", l.TeacherID),
		slog.Bool("aiGenerated", l.AIGenerated),
	)
	return l, nil
}

// List returns the teacher's lessons in the order they were saved.
func (s *LessonService) List(ctx context.Context, teacherID int64) ([]model.Lesson, error) {
	list, err := s.repo.GetLessons(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("service/lesson: listing for teacher %d: %w", teacherID, err)
	}
	return list, nil
}
