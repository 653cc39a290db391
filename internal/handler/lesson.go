package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/service"
)

const (
	msgFetchLessons   = "Failed to fetch lessons"
	msgCreateLesson   = "Failed to create lesson"
	msgGenerateLesson = "Failed to generate lesson"
)

// GenerateLessonRequest is the body of POST /api/lessons/generate.
type GenerateLessonRequest struct {
	Subject   string `json:"subject"   validate:"required,notblank"`
	YearGroup string `json:"yearGroup" validate:"required,notblank"`
}

// LessonHandler serves lesson plan generation and saved lessons.
type LessonHandler struct {
	lessons *service.LessonService
	logger  *slog.Logger
}

func NewLessonHandler(lessons *service.LessonService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{lessons: lessons, logger: logger}
}

// HandleList returns a teacher's saved lessons, or [].
//
// HTTP: GET /api/lessons/{teacherId}
func (h *LessonHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	teacherID, err := idParam(r, "teacherId")
	if err != nil {
		writeClassroomError(w, r, h.logger, err, msgFetchLessons)
		return
	}

	list, err := h.lessons.List(r.Context(), teacherID)
	if err != nil {
		writeClassroomError(w, r, h.logger, err, msgFetchLessons)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleCreate saves a lesson and returns it with its id.
//
// HTTP: POST /api/lessons
// REQUEST BODY: {"teacherId": 1, "title": "...", "content": "...", "aiGenerated": true}
func (h *LessonHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var l model.Lesson
	if err := decodeJSON(w, r, &l); err != nil {
		writeClassroomError(w, r, h.logger, err, msgCreateLesson)
		return
	}

	created, err := h.lessons.Create(r.Context(), &l)
	if err != nil {
		writeClassroomError(w, r, h.logger, err, msgCreateLesson)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// HandleGenerate suggests a lesson plan. Nothing is stored.
//
// HTTP: POST /api/lessons/generate
// REQUEST BODY: {"subject": "Mathematics", "yearGroup": "Year 3"}
func (h *LessonHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateLessonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeClassroomError(w, r, h.logger, err, msgGenerateLesson)
		return
	}
	if err := validateStruct(req, service.MsgMissingFields); err != nil {
		writeClassroomError(w, r, h.logger, err, msgGenerateLesson)
		return
	}

	plan, err := h.lessons.Generate(r.Context(), req.Subject, req.YearGroup)
	if err != nil {
		writeClassroomError(w, r, h.logger, err, msgGenerateLesson)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
