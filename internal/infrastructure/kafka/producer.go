package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"habit-reminder/internal/config"
	"habit-reminder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventTypeHabitDue is the event type of a reminder message.
const EventTypeHabitDue = "habit.due"

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReminderEvent is the JSON payload consumed by the chat transport.
type ReminderEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Reminder  entity.Reminder `json:"reminder"`
	CreatedAt time.Time       `json:"created_at"`
}

// Producer publishes due reminders to Kafka
type Producer struct {
	writer messageWriter
	logger *zap.Logger
	now    func() time.Time
}

// NewProducer creates a new Kafka producer. Writes are synchronous so a
// failed publish is reported to the caller, which releases its fire guard.
func NewProducer(cfg config.KafkaConfig, logger *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return newProducer(writer, logger)
}

func newProducer(writer messageWriter, logger *zap.Logger) *Producer {
	return &Producer{
		writer: writer,
		logger: logger.With(zap.String("component", "kafka_producer")),
		now:    time.Now,
	}
}

// PublishReminder publishes one reminder keyed by habit id, so reminders
// for the same habit stay on one partition
func (p *Producer) PublishReminder(ctx context.Context, reminder entity.Reminder) error {
	event := ReminderEvent{
		EventID:   uuid.New().String(),
		EventType: EventTypeHabitDue,
		Reminder:  reminder,
		CreatedAt: p.now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(reminder.HabitID.String()),
		Value: data,
		Time:  event.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeHabitDue)},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish reminder: %w", err)
	}

	p.logger.Debug("published reminder",
		zap.String("habit_id", reminder.HabitID.String()),
		zap.String("external_id", reminder.ExternalID),
		zap.String("local_date", reminder.LocalDate),
	)
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
