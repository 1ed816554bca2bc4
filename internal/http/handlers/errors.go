package handlers

import (
	"net/http"

	"busfinder/internal/domain"
	"busfinder/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConnection(err):
		respondError(c, http.StatusServiceUnavailable, "connection_error", err.Error(), nil)
	case domain.IsQuery(err):
		respondError(c, http.StatusInternalServerError, "query_error", err.Error(), nil)
	case domain.IsInternal(err):
		respondError(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}

// fail reports err and, for connection failures, ends the process afterwards.
func (h Handler) fail(c *gin.Context, err error) {
	RespondDomainError(c, err)
	if domain.IsConnection(err) {
		h.terminate(c, err)
	}
}
