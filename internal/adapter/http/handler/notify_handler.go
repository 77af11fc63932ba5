package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotificationSender fans a notification out to the configured channels.
type NotificationSender interface {
	Notify(ctx context.Context, subject, message string)
}

// NotifyHandler handles notification dispatch requests
type NotifyHandler struct {
	notifier NotificationSender
}

// NewNotifyHandler creates a new notify handler
func NewNotifyHandler(notifier NotificationSender) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

// NotifyRequest is the body of POST /notify
type NotifyRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Notify handles POST /notify. Delivery is best effort: once a message
// is present the endpoint reports success regardless of whether any
// channel actually delivered.
func (h *NotifyHandler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		respondDetail(c, http.StatusBadRequest, "Message is required")
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "GrievAI Notification"
	}

	h.notifier.Notify(c.Request.Context(), subject, req.Message)

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
