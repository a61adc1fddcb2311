package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/logger"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/middleware"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Issues  []domain.Issue `json:"issues,omitempty"`
	Summary map[string]int `json:"summary,omitempty"`
}

// respondError maps service errors to HTTP replies. Unexpected errors are
// logged and reported without detail.
func respondError(c *gin.Context, err error, action string) {
	var subErr *domain.SubmissionError
	var resErr *domain.ResolutionError

	switch {
	case errors.As(err, &subErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   subErr.Error(),
			Code:    subErr.Code,
			Issues:  subErr.Issues,
			Summary: subErr.Summary(),
		})
	case errors.As(err, &resErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: resErr.Error(), Code: "unresolved_reference"})
	case errors.Is(err, domain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "import job not found"})
	case errors.Is(err, domain.ErrJobAccessDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "import job belongs to another school"})
	case errors.Is(err, domain.ErrJobTerminal):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "import job already finished"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Store unavailable",
			slog.String("action", action),
			slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service temporarily unavailable"})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Request failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to " + action})
	}
}
