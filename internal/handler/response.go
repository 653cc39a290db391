package handler

// Every error response has the same shape:
//
//	{"message": "Failed to fetch progress"}
//
// Domain errors are mapped to status codes here and nowhere else.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/monkey-intelligence/internal/apperror"
	"github.com/sakif/monkey-intelligence/internal/observability"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// writeJSON sets the headers, then the status, then encodes the body.
// Headers set after the first Write are ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// statusFor maps a domain error to its HTTP status. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes its message. A 500 never exposes
// the raw error; it gets fallback instead and is logged and reported.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)

	var appErr *apperror.AppError
	if status != http.StatusInternalServerError && errors.As(err, &appErr) {
		writeJSON(w, status, ErrorResponse{Message: appErr.Message})
		return
	}

	serverError(w, r, logger, err, fallback)
}

// writeClassroomError is writeError for the classroom routes: validation
// errors are a 400 with their own message and every other failure is a 500
// with the route's fixed message. Not-found is never surfaced as 404 there.
func writeClassroomError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, fallback string) {
	var appErr *apperror.AppError
	if errors.Is(err, apperror.ErrValidation) && errors.As(err, &appErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: appErr.Message})
		return
	}

	serverError(w, r, logger, err, fallback)
}

func serverError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, message string) {
	route := routePattern(r)
	logger.Error(message,
		slog.String("route", route),
		slog.String("error", err.Error()),
	)
	observability.CaptureErr(err, route)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: message})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
