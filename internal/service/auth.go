// Package service holds the business rules between the HTTP handlers and the
// repositories:
//
//	handler (HTTP) → service (rules, logging, metrics) → repository (storage)
//
// Services accept and return domain types and apperror values. They never see
// an *http.Request.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sakif/monkey-intelligence/internal/apperror"
	"github.com/sakif/monkey-intelligence/internal/auth"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/repository"
)

const (
	msgUsernameTaken      = "Username already exists"
	msgInvalidCredentials = "Invalid username or password"
	msgNotAuthenticated   = "Not authenticated"
)

// AuthService registers users, checks credentials and issues session tokens.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger

	// registerMu makes the username check and the insert one step.
	registerMu sync.Mutex
}

func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult bundles the user and the issued token so the handler can set
// the cookie and respond in one step.
type AuthResult struct {
	User  *model.User
	Token string
}

// RegisterInput is what a new account needs. Password is plaintext here and
// is hashed before it reaches the store.
type RegisterInput struct {
	Username string
	Password string
	Role     model.Role
	Name     string
}

// Register creates an account and signs the new user in.
// A taken username is a validation error, not a conflict, so the client sees
// a 400 like the rest of the form errors.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if !in.Role.Valid() {
		return nil, apperror.ValidationFailed("role", fmt.Sprintf("role must be %q or %q", model.RoleTeacher, model.RoleStudent))
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, apperror.ValidationFailed("password", err.Error())
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	_, err = s.users.GetUserByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, apperror.ValidationFailed("username", msgUsernameTaken)
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("service/auth: checking username %q: %w", in.Username, err)
	}

	user := &model.User{
		Username: in.Username,
		Password: hash,
		Role:     in.Role,
		Name:     in.Name,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("service/auth: creating user %q: %w", in.Username, err)
	}

	s.logger.Info("user registered",
		slog.Int64("userID", user.ID),
		slog.String("role", string(user.Role)),
	)

	return s.issue(user)
}

// Login checks a username and password. Unknown users and wrong passwords
// get the same error so the response does not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("service/auth: looking up %q: %w", username, err)
	}

	if err := s.passwords.Verify(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			s.logger.Info("login rejected", slog.Int64("userID", user.ID))
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("service/auth: verifying password for user %d: %w", user.ID, err)
	}

	return s.issue(user)
}

// CurrentUser loads the user behind a session. A session whose user no
// longer exists is treated as no session.
func (s *AuthService) CurrentUser(ctx context.Context, session auth.Session) (*model.User, error) {
	user, err := s.users.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(msgNotAuthenticated)
		}
		return nil, fmt.Errorf("service/auth: fetching user %d: %w", session.UserID, err)
	}
	return user, nil
}

// TokenTTL is the lifetime of issued tokens, used for the cookie Max-Age.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func (s *AuthService) issue(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %d: %w", user.ID, err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
