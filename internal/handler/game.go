package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/monkey-intelligence/internal/game"
)

const (
	msgQuestionFailed = "Failed to generate question"
	msgRoundFailed    = "Failed to start round"
)

// GameHandler hands out math practice questions.
type GameHandler struct {
	questions *game.Generator
	logger    *slog.Logger
}

func NewGameHandler(questions *game.Generator, logger *slog.Logger) *GameHandler {
	return &GameHandler{questions: questions, logger: logger}
}

// HandleQuestion returns one question at the requested difficulty.
//
// HTTP: GET /api/game/question?difficulty=easy|medium|hard
func (h *GameHandler) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	d, err := game.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		writeError(w, r, h.logger, err, msgQuestionFailed)
		return
	}

	q, err := h.questions.Question(d)
	if err != nil {
		writeError(w, r, h.logger, err, msgQuestionFailed)
		return
	}

	writeJSON(w, http.StatusOK, q)
}

// HandleRound deals a whole round so the client can play offline and post
// the score to /api/progress with the returned gameType.
//
// HTTP: GET /api/game/round?difficulty=easy|medium|hard
func (h *GameHandler) HandleRound(w http.ResponseWriter, r *http.Request) {
	d, err := game.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		writeError(w, r, h.logger, err, msgRoundFailed)
		return
	}

	round, err := h.questions.Round(d)
	if err != nil {
		writeError(w, r, h.logger, err, msgRoundFailed)
		return
	}

	writeJSON(w, http.StatusOK, round)
}
