package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"dogroom/pkg/model"
)

// KafkaPublisher writes booking events to a single topic, keyed by host id
// so all events for one host land on the same partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
			Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		},
	}
}

func (p *KafkaPublisher) BookingChanged(ctx context.Context, eventType string, booking model.Booking) error {
	payload, err := json.Marshal(BookingEvent{
		Type:    eventType,
		Booking: booking,
		At:      time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(booking.HostID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(uuid.New().String())},
			{Key: "event-type", Value: []byte(eventType)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
