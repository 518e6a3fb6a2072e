package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"ms-attendance/internal/logger"
	"ms-attendance/internal/models"
)

// Producer streams check-in lifecycle events to the attendance topic. In mock
// mode events are logged instead of written, so the service runs without a
// broker on the event floor.
type Producer struct {
	writer *kafka.Writer
	logger *logger.Logger
	topic  string
	mock   bool
}

func NewProducer(brokers []string, topic string, mockMode bool, log *logger.Logger) *Producer {
	p := &Producer{logger: log, topic: topic, mock: mockMode}
	if !mockMode {
		p.writer = kafka.NewWriter(kafka.WriterConfig{
			Brokers: brokers,
			Topic:   topic,
		})
	}
	return p
}

// PublishCheckedIn streams a successful check-in.
func (p *Producer) PublishCheckedIn(record models.AttendanceRecord) error {
	return p.publish(models.EventKindCheckedIn, record)
}

// PublishCheckInUndone streams a reversed check-in.
func (p *Producer) PublishCheckInUndone(record models.AttendanceRecord) error {
	return p.publish(models.EventKindCheckInUndone, record)
}

// PublishWalkInAdded streams an on-site purchase.
func (p *Producer) PublishWalkInAdded(record models.AttendanceRecord) error {
	return p.publish(models.EventKindWalkInAdded, record)
}

// PublishWalkInRemoved streams a deleted walk-in.
func (p *Producer) PublishWalkInRemoved(record models.AttendanceRecord) error {
	return p.publish(models.EventKindWalkInRemoved, record)
}

func (p *Producer) publish(kind string, record models.AttendanceRecord) error {
	event := models.CheckInEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		Record:     record,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if p.mock {
		p.logger.LogKafka("MOCK", p.topic, fmt.Sprintf("%s %s", kind, record.ID))
		return nil
	}

	err = p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(record.ID),
		Value: value,
	})
	if err != nil {
		return err
	}
	p.logger.LogKafka("PUBLISH", p.topic, fmt.Sprintf("%s %s", kind, record.ID))
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
