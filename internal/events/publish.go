package events

import (
	"context"
	"encoding/json"
)

// Recognized ticket change actions.
const (
	ActionCreated     = "ticket.created"
	ActionUpdated     = "ticket.updated"
	ActionDeleted     = "ticket.deleted"
	ActionBulkUpdated = "ticket.bulk_updated"
	ActionTagged      = "ticket.tagged"
	ActionUntagged    = "ticket.untagged"
)

var producer TicketEventProducer

// SetProducer installs the broker mirror. Without one, events still reach
// SSE subscribers.
func SetProducer(p TicketEventProducer) {
	producer = p
}

// PublishTicketChange notifies every open session that a ticket changed so
// it can refetch, and mirrors the event to the broker when configured.
func PublishTicketChange(action string, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	GlobalHub.Broadcast(Event{
		EventType: action,
		Data:      string(data),
	})
	if producer != nil {
		producer.ProduceTicketEvent(context.Background(), action, payload)
	}
}

// PublishTicket is the common single-ticket case.
func PublishTicket(action, ticketID string) {
	PublishTicketChange(action, map[string]interface{}{"ticket_id": ticketID})
}
