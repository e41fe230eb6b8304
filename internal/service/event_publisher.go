package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"grocery-backoffice/internal/models"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Order lifecycle event types.
const (
	EventOrderPlaced     = "order.placed"
	EventPaymentApproved = "payment.approved"
	EventPaymentRejected = "payment.rejected"
	EventOrderDelivered  = "order.delivered"
)

// OrderEvent is the envelope published for every order lifecycle change.
type OrderEvent struct {
	EventID       string    `json:"eventId"`
	Type          string    `json:"type"`
	OrderID       uint      `json:"orderId"`
	CustomerID    uint      `json:"customerId"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// EventPublisher emits order lifecycle events. Publishing is best-effort:
// the order is already durable when an event goes out.
type EventPublisher interface {
	PublishOrderEvent(eventType string, order *models.Order) error
}

// KafkaEventPublisher implements EventPublisher on a Sarama sync producer.
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaEventPublisher connects a sync producer to the given brokers.
func NewKafkaEventPublisher(brokers []string, topic string) (*KafkaEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("Kafka producer connected successfully")
	return &KafkaEventPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaEventPublisher) PublishOrderEvent(eventType string, order *models.Order) error {
	event := OrderEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		Total:         order.Total,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		OccurredAt:    time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", order.ID)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Printf("Failed to publish %s for order %d: %v", eventType, order.ID, err)
		return err
	}
	log.Printf("Published %s for order %d (partition %d, offset %d)", eventType, order.ID, partition, offset)
	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaEventPublisher) Close() error {
	return p.producer.Close()
}

// NoopEventPublisher is wired when no Kafka brokers are configured.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishOrderEvent(string, *models.Order) error { return nil }
