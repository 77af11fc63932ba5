package handler

import "github.com/gin-gonic/gin"

// Detail is the error response body: a single human-readable message.
// Internal error details are never placed here.
type Detail struct {
	Detail string `json:"detail"`
}

func respondDetail(c *gin.Context, status int, message string) {
	c.JSON(status, Detail{Detail: message})
}
