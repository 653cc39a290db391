package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/monkey-intelligence/internal/service"
)

const msgChatFailed = "Failed to get response"

var errNoPrompt = errors.New("chat request has no prompt")

// ChatRequest is the body of POST /api/ai/chat. Prompt is a pointer so an
// absent prompt can be told apart from an empty one.
type ChatRequest struct {
	Prompt *string `json:"prompt"`
}

// ChatResponse wraps the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

type ChatHandler struct {
	chat   *service.ChatService
	logger *slog.Logger
}

func NewChatHandler(chat *service.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: logger}
}

// HandleChat answers a study question.
//
// HTTP: POST /api/ai/chat
// REQUEST BODY: {"prompt": "how do I add fractions?"}
//
// An empty prompt gets the generic reply. A missing prompt is a server-side
// failure, matching the web client's error handling.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeClassroomError(w, r, h.logger, err, msgChatFailed)
		return
	}
	if req.Prompt == nil {
		writeClassroomError(w, r, h.logger, errNoPrompt, msgChatFailed)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: h.chat.Respond(r.Context(), *req.Prompt)})
}
