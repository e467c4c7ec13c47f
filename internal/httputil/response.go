// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gen-relay/genlayer-relay/internal/errors"
)

// Response status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse represents the error envelope returned by every endpoint.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse builds an error envelope with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response using Gin.
// Messages of known kinds are exposed verbatim; anything else becomes a generic 500.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()

	case apperrors.Is(err, apperrors.ErrConfiguration):
		statusCode = http.StatusInternalServerError
		message = err.Error()

	case apperrors.Is(err, apperrors.ErrUpstream):
		statusCode = http.StatusBadGateway
		message = "upstream request failed"

	default:
		statusCode = http.StatusInternalServerError
		message = "internal error"
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, NewErrorResponse(message))
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse("invalid request body"))
}

// HandleValidationErrorGin writes a 400 Bad Request response for validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
}
