package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher forwards run-completed events to a topic so the operations
// system can pick up a finished upload
type KafkaPublisher struct {
	w       messageWriter
	topic   string
	timeout time.Duration
}

// NewKafkaPublisher creates a publisher; each publish gives up after timeout
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) *KafkaPublisher {
	return newKafkaPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: timeout,
	}, topic, timeout)
}

func newKafkaPublisherWithWriter(w messageWriter, topic string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{w: w, topic: topic, timeout: timeout}
}

func (p *KafkaPublisher) CanHandle(eventType string) bool {
	return eventType == RunCompletedEvent
}

func (p *KafkaPublisher) Handle(ctx context.Context, event Event) error {
	value, err := json.Marshal(struct {
		Type      string      `json:"type"`
		Stream    string      `json:"stream"`
		Timestamp string      `json:"timestamp"`
		Data      interface{} `json:"data"`
	}{
		Type:      event.Type(),
		Stream:    event.StreamID(),
		Timestamp: event.Timestamp().Format("2006-01-02T15:04:05Z07:00"),
		Data:      event.Data(),
	})
	if err != nil {
		return errors.Wrap(err, "encode event")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.StreamID()),
		Value: value,
	}); err != nil {
		return errors.Wrap(err, "kafka publish")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
