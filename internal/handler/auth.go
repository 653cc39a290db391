package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/monkey-intelligence/internal/auth"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/service"
)

const (
	msgRegisterFailed   = "Registration failed"
	msgLoginFailed      = "Login failed"
	msgUserFailed       = "Failed to fetch user"
	msgNotAuthenticated = "Not authenticated"
)

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role"     validate:"required,oneof=teacher student"`
	Name     string `json:"name"     validate:"required,notblank,max=128"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler manages registration, login and the session cookie.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

// HandleRegister creates an account and signs it in.
//
// HTTP: POST /api/register
// REQUEST BODY: {"username": "...", "password": "...", "role": "teacher", "name": "..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err, msgRegisterFailed)
		return
	}
	if err := validateStruct(req, "Invalid registration details"); err != nil {
		writeError(w, r, h.logger, err, msgRegisterFailed)
		return
	}

	res, err := h.auth.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     model.Role(req.Role),
		Name:     req.Name,
	})
	if err != nil {
		writeError(w, r, h.logger, err, msgRegisterFailed)
		return
	}

	auth.SetCookie(w, res.Token, h.auth.TokenTTL())
	writeJSON(w, http.StatusCreated, res.User)
}

// HandleLogin checks credentials and sets the session cookie.
//
// HTTP: POST /api/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err, msgLoginFailed)
		return
	}
	if err := validateStruct(req, "Username and password are required"); err != nil {
		writeError(w, r, h.logger, err, msgLoginFailed)
		return
	}

	res, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err, msgLoginFailed)
		return
	}

	auth.SetCookie(w, res.Token, h.auth.TokenTTL())
	writeJSON(w, http.StatusOK, res.User)
}

// HandleLogout deletes the session cookie. The token itself stays valid
// until it expires; without the cookie the browser no longer sends it.
//
// HTTP: POST /api/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCookie(w)
	w.WriteHeader(http.StatusOK)
}

// HandleUser returns the signed-in user.
//
// HTTP: GET /api/user
// Auth: optional; anonymous callers get 401
func (h *AuthHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: msgNotAuthenticated})
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), session)
	if err != nil {
		writeError(w, r, h.logger, err, msgUserFailed)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
