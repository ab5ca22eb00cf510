package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/helpdesk/backend/internal/logger"
	"github.com/segmentio/kafka-go"
)

// TicketEventProducer publishes ticket change events to a broker so other
// services can follow the change feed without an open SSE connection.
type TicketEventProducer interface {
	ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer writes ticket events to a Kafka topic. Best-effort: a publish
// failure is logged, never surfaced to the request path.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a producer. With no brokers or an empty topic every
// method is a no-op.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// ProduceTicketEvent sends one ticket event to the topic.
func (p *Producer) ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		logger.WithError(err, "events").Error("marshal ticket event")
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: body}); err != nil {
		logger.WithError(err, "events").Error("write ticket event")
	}
}

// Close closes the writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// ParseBrokers splits a "host1:9092,host2:9092" broker list.
func ParseBrokers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
