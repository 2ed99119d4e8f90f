package response

import "github.com/gin-gonic/gin"

// Envelope is the uniform JSON wrapper for every API response.
// Code mirrors the HTTP status of the response.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK writes a 200 response carrying data
func OK(c *gin.Context, data interface{}) {
	c.JSON(200, Envelope{Code: 200, Data: data})
}

// OKMessage writes a 200 response with a message and optional data
func OKMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(200, Envelope{Code: 200, Message: message, Data: data})
}

// Fail writes an error response with the given status and message
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Code: status, Message: message})
}

// AbortWith rejects the request from middleware with the given status and message
func AbortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Code: status, Message: message})
}
