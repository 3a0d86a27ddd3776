package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"hall-allocation/internal/pkg/errs"
	"hall-allocation/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	consumerPrefetch  = 50
	initialBackoff    = time.Second
	maxBackoff        = 30 * time.Second
	reconnectInterval = 2 * time.Second
)

var errDeliveriesClosed = errs.New("deliveries channel closed")

type EventHandler func(ctx context.Context, event shared.AllocationEvent) error

// Consumer reads allocation events from a durable queue and hands each one to
// a handler. Connection loss triggers a reconnect with exponential backoff.
type Consumer struct {
	url     string
	queue   string
	handler EventHandler
}

func NewConsumer(url, queue string, handler EventHandler) *Consumer {
	return &Consumer{
		url:     url,
		queue:   queue,
		handler: handler,
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := initialBackoff
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			slog.WarnContext(ctx, "failed to dial broker", "error", err.Error(), "retry_in", backoff.String())
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = initialBackoff

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.WarnContext(ctx, "consume loop ended, reconnecting", "error", err.Error())
		if !sleep(ctx, reconnectInterval) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		slog.WarnContext(ctx, "failed to set prefetch", "error", err.Error())
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	slog.InfoContext(ctx, "consuming allocation events", "queue", c.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errDeliveriesClosed
			}
			c.process(ctx, d)
		}
	}
}

// process acks handled events. Undecodable or failing events are dropped
// without requeue so a poison message cannot spin the loop.
func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	event, err := DecodeEvent(d.Body)
	if err == nil {
		err = c.handler(ctx, event)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to handle allocation event",
			"delivery_tag", d.DeliveryTag,
			"error", err.Error())
		if nackErr := d.Nack(false, false); nackErr != nil {
			slog.WarnContext(ctx, "nack failed", "error", nackErr.Error())
		}
		return
	}
	if ackErr := d.Ack(false); ackErr != nil {
		slog.WarnContext(ctx, "ack failed", "error", ackErr.Error())
	}
}

func DecodeEvent(body []byte) (shared.AllocationEvent, error) {
	var event shared.AllocationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return shared.AllocationEvent{}, fmt.Errorf("unmarshal: %w", err)
	}
	switch event.Type {
	case shared.EventHallAllocated, shared.EventHallDeallocated:
	default:
		return shared.AllocationEvent{}, fmt.Errorf("unknown event type %q", event.Type)
	}
	return event, nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
