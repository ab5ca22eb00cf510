package events

import (
	"reflect"
	"testing"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()

	a := &Client{ID: "a", UserID: "user-a", Events: make(chan Event, 4)}
	b := &Client{ID: "b", UserID: "user-b", Events: make(chan Event, 4)}
	hub.Register(a)
	hub.Register(b)

	if hub.ClientCount() != 2 {
		t.Errorf("Expected 2 clients, got %d", hub.ClientCount())
	}

	event := Event{EventType: "ticket.updated", Data: `{"ticket_id":"t1"}`}
	hub.Broadcast(event)

	for _, client := range []*Client{a, b} {
		select {
		case got := <-client.Events:
			if got != event {
				t.Errorf("Client %s received %+v, expected %+v", client.ID, got, event)
			}
		default:
			t.Errorf("Client %s received no event", client.ID)
		}
	}

	hub.Unregister("a")
	if hub.ClientCount() != 1 {
		t.Errorf("Expected 1 client after unregister, got %d", hub.ClientCount())
	}

	// Channel is closed on unregister so the stream loop terminates
	if _, ok := <-a.Events; ok {
		t.Error("Expected closed channel for unregistered client")
	}

	// Unregistering an unknown id is a no-op
	hub.Unregister("a")
	hub.Unregister("missing")
	if hub.ClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.ClientCount())
	}
}

func TestHubBroadcastSkipsFullBuffer(t *testing.T) {
	hub := NewHub()

	full := &Client{ID: "full", UserID: "u", Events: make(chan Event, 1)}
	hub.Register(full)

	hub.Broadcast(Event{EventType: "ticket.created", Data: "{}"})
	// Buffer is now full; this must not block
	hub.Broadcast(Event{EventType: "ticket.deleted", Data: "{}"})

	got := <-full.Events
	if got.EventType != "ticket.created" {
		t.Errorf("Expected first event to survive, got %s", got.EventType)
	}
	select {
	case extra := <-full.Events:
		t.Errorf("Expected dropped second event, got %s", extra.EventType)
	default:
	}
}

func TestParseBrokers(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"localhost:9092", []string{"localhost:9092"}},
		{"a:9092,b:9092", []string{"a:9092", "b:9092"}},
		{" a:9092 , , b:9092 ", []string{"a:9092", "b:9092"}},
	}

	for _, test := range tests {
		got := ParseBrokers(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("ParseBrokers(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestNoopProducer(t *testing.T) {
	p := NewProducer(nil, "")
	if p.writer != nil {
		t.Error("Expected no writer without brokers")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close on no-op producer returned %v", err)
	}
}
