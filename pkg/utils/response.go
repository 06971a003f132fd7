package utils

import (
	"afyajirani-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse ends the request with the inline message of err and the
// status that matches its kind.
func ErrorResponse(c *gin.Context, err error) {
	APIResponse(c, apperr.Status(err), false, apperr.Message(err), gin.H{
		"kind": apperr.KindOf(err),
	})
}
