package controllers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/events"
	"github.com/helpdesk/backend/internal/middleware"
)

// EventsController streams the ticket change feed over Server-Sent Events.
// Each open session subscribes here and refetches on every event.
type EventsController struct{}

func NewEventsController() *EventsController {
	return &EventsController{}
}

func (ec *EventsController) Stream(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)

	client := &events.Client{
		ID:     uuid.NewString(),
		UserID: profile.ID.String(),
		Events: make(chan events.Event, 16),
	}
	events.GlobalHub.Register(client)
	defer events.GlobalHub.Unregister(client.ID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-client.Events:
			if !ok {
				return false
			}
			c.SSEvent(event.EventType, event.Data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
