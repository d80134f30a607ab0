package handlers

import "github.com/gin-gonic/gin"

// Envelope is the uniform response body for every endpoint. Clients treat
// non-2xx or success:false identically as failure.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string, errs ...string) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: errs})
}
