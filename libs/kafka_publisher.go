package libs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/models"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type CartChangedEvent struct {
	EventID    string          `json:"event_id"`
	Version    uint64          `json:"version"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []CartEventItem `json:"items"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type CartEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartEventPublisher forwards cart snapshots to a Kafka topic. It is meant
// to be registered as a cart store listener via Listen.
type CartEventPublisher struct {
	writer MessageWriter
	logger *zap.Logger
	now    func() time.Time
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
}

func NewCartEventPublisher(writer MessageWriter, logger *zap.Logger) *CartEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartEventPublisher{
		writer: writer,
		logger: logger.Named("cart_events"),
		now:    time.Now,
	}
}

// Listen publishes one event per snapshot. Failures are logged; the cart
// mutation that produced the snapshot has already happened.
func (p *CartEventPublisher) Listen(snapshot models.CartSnapshot) {
	event := CartChangedEvent{
		EventID:    uuid.NewString(),
		Version:    snapshot.Version,
		TotalItems: snapshot.TotalItems,
		TotalPrice: snapshot.TotalPrice,
		Items:      make([]CartEventItem, len(snapshot.Items)),
		OccurredAt: p.now().UTC(),
	}
	for i, item := range snapshot.Items {
		event.Items[i] = CartEventItem{ProductID: item.ID, Quantity: item.Quantity}
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("encode cart event", zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte("cart"),
		Value: data,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		p.logger.Warn("publish cart event", zap.Uint64("version", snapshot.Version), zap.Error(err))
	}
}

func (p *CartEventPublisher) Close() error {
	return p.writer.Close()
}
