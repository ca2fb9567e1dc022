package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse is the uniform envelope every handler answers with. Nothing
// beyond the message field crosses the boundary on failure.
type JSONResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Success: code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Success: false,
		Message: err.Error(),
	})
}
