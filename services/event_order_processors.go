package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sportsstore-service/models"
	aws_pkg "sportsstore-service/pkg/aws"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func marshalOrderPlaced(cart *models.Cart, details models.ShippingDetails) (models.OrderPlacedEvent, []byte, error) {
	event := models.NewOrderPlacedEvent(cart, details, time.Now().UTC())
	data, err := json.Marshal(event)
	if err != nil {
		return event, nil, fmt.Errorf("marshal order_placed event: %w", err)
	}
	return event, data, nil
}

// SNSOrderProcessor publishes an order_placed event to an SNS topic.
type SNSOrderProcessor struct {
	client   aws_pkg.EventPublisher
	topicArn string
	logger   *zap.Logger
}

func NewSNSOrderProcessor(client aws_pkg.EventPublisher, topicArn string, logger *zap.Logger) *SNSOrderProcessor {
	return &SNSOrderProcessor{client: client, topicArn: topicArn, logger: logger}
}

func (p *SNSOrderProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	if p.client == nil || p.topicArn == "" {
		p.logger.Warn("SNS client not configured, skipping order_placed event")
		return nil
	}
	event, data, err := marshalOrderPlaced(cart, details)
	if err != nil {
		return err
	}
	ev := aws_pkg.Event{Type: event.EventType, Key: event.OrderID, Payload: data}
	if err := p.client.PublishEvent(ctx, p.topicArn, ev); err != nil {
		return err
	}
	p.logger.Info("Published order_placed event",
		zap.String("order_id", event.OrderID),
		zap.String("total", event.Total.String()),
	)
	return nil
}

// SQSOrderProcessor queues an order_placed event for fulfilment workers.
type SQSOrderProcessor struct {
	client aws_pkg.SQSSender
	logger *zap.Logger
}

func NewSQSOrderProcessor(client aws_pkg.SQSSender, logger *zap.Logger) *SQSOrderProcessor {
	return &SQSOrderProcessor{client: client, logger: logger}
}

func (p *SQSOrderProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	event, data, err := marshalOrderPlaced(cart, details)
	if err != nil {
		return err
	}
	attrs := map[string]string{"event_type": event.EventType, "order_id": event.OrderID}
	if err := p.client.SendMessage(ctx, string(data), attrs); err != nil {
		return err
	}
	p.logger.Info("Queued order_placed event", zap.String("order_id", event.OrderID))
	return nil
}

// MessageWriter is the part of kafka.Writer used to publish orders.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaWriter builds a writer for topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// KafkaOrderProcessor writes an order_placed event keyed by order id.
type KafkaOrderProcessor struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewKafkaOrderProcessor(writer MessageWriter, logger *zap.Logger) *KafkaOrderProcessor {
	return &KafkaOrderProcessor{writer: writer, logger: logger}
}

func (p *KafkaOrderProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	event, data, err := marshalOrderPlaced(cart, details)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write order_placed: %w", err)
	}
	p.logger.Info("Published order_placed event to kafka", zap.String("order_id", event.OrderID))
	return nil
}
