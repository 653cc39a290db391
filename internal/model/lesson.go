package model

import "time"

// Lesson is a lesson plan a teacher chose to keep.
// Lessons are append-only per teacher.
type Lesson struct {
	ID          int64     `json:"id"          db:"id"`
	TeacherID   int64     `json:"teacherId"   db:"teacher_id"`
	Title       string    `json:"title"       db:"title"`
	Content     string    `json:"content"     db:"content"`
	AIGenerated bool      `json:"aiGenerated" db:"ai_generated"`
	CreatedAt   time.Time `json:"createdAt"   db:"created_at"`
}

// LessonPlan is a generated suggestion. It is not stored until the teacher
// saves it as a Lesson.
type LessonPlan struct {
	Title      string   `json:"title"`
	Objectives []string `json:"objectives"`
	Activities []string `json:"activities"`
	Assessment []string `json:"assessment"`
}
