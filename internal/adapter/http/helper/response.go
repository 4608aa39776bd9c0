package helper

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/response"
)

func SendSuccess(c *gin.Context, statusCode int, payload any) {
	c.JSON(statusCode, payload)
}

// RenderError is the single place domain errors become transport status
// codes. Handlers never pick a status themselves.
func RenderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		sendError(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		sendError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrUnauthorized):
		sendError(c, http.StatusUnauthorized, "Unauthorized request")
	case errors.Is(err, domain.ErrTaskNotFound):
		sendError(c, http.StatusNotFound, "Task not found")
	default:
		// Details stay server-side.
		slog.Error("Internal error", "error", err, "path", c.FullPath())
		sendError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func SendValidationError(c *gin.Context, err error) {
	sendError(c, http.StatusBadRequest, validation.FirstMessage(err))
}

func SendBadRequestError(c *gin.Context, message string) {
	sendError(c, http.StatusBadRequest, message)
}

func SendUnauthorizedError(c *gin.Context) {
	sendError(c, http.StatusUnauthorized, "Unauthorized request")
}

func sendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.ErrorResponse{
		Success: false,
		Message: message,
	})
}
