package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DetailResponse is the body shape for auth and readiness failures.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// StatusOK sends a 200 response with a status label.
func StatusOK(c *gin.Context, status string) {
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Created sends a 201 Created response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Unauthorized sends a 401 Unauthorized response with a fixed detail message.
func Unauthorized(c *gin.Context, detail string) {
	c.JSON(http.StatusUnauthorized, DetailResponse{Detail: detail})
}

// ServiceUnavailable sends a 503 response with a fixed detail message.
func ServiceUnavailable(c *gin.Context, detail string) {
	c.JSON(http.StatusServiceUnavailable, DetailResponse{Detail: detail})
}

// InternalServerError sends a 500 response with a fixed detail message.
// Store-level details are logged server-side, never returned.
func InternalServerError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, DetailResponse{Detail: detail})
}

// ValidationError sends a 422 Unprocessable Entity response enumerating the
// violated fields.
func ValidationError(c *gin.Context, errors FieldValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errors})
}
