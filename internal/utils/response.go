package utils

import (
	"net/http"

	"rentwheels/internal/config"

	"github.com/gin-gonic/gin"
)

// Error bodies carry a human-readable message plus, outside production, the
// underlying error detail. Success bodies are emitted bare with no envelope:
// the entity, the list, or the named fields the front-ends consume.

func ErrorResponse(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil && !config.IsProduction() {
		body["error"] = err.Error()
	}
	c.JSON(statusCode, body)
}

func BadRequestResponse(c *gin.Context, message string, err error) {
	ErrorResponse(c, http.StatusBadRequest, message, err)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found", nil)
}

func InternalErrorResponse(c *gin.Context, message string, err error) {
	ErrorResponse(c, http.StatusInternalServerError, message, err)
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
