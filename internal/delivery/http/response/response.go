package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the API JSON response shape consumed by the site frontend.
// Exactly one of Message or Error is set.
type Body struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Body{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Body{Error: message})
}
