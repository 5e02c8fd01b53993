package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"auction-engine/utils"
)

const (
	// EventQueue carries auction.updated and the other domain events for the
	// search-index subscriber.
	EventQueue = "auction_events"
	// NotificationQueue carries outbound user notifications.
	NotificationQueue = "notification_queue"
	// OrderQueue carries checkout-initiation messages.
	OrderQueue = "order_queue"
)

// AMQPPublisher publishes domain events to a durable RabbitMQ queue.
type AMQPPublisher struct {
	conn  *amqp.Connection
	queue string
}

// NewAMQPPublisher creates a publisher bound to the given queue name.
func NewAMQPPublisher(conn *amqp.Connection, queue string) *AMQPPublisher {
	return &AMQPPublisher{conn: conn, queue: queue}
}

func (p *AMQPPublisher) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", evt.Type, err)
	}
	return p.publish(ctx, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, body []byte) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	return ch.PublishWithContext(
		ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// notificationMessage is the wire format consumed by the mail/notification
// service.
type notificationMessage struct {
	Kind    string         `json:"kind"`
	Payload map[string]any `json:"payload"`
}

// AMQPNotifier sends user notifications through the notification queue.
// Failures are logged and swallowed: notification is best-effort and
// decoupled from the transactional boundary.
type AMQPNotifier struct {
	pub *AMQPPublisher
}

func NewAMQPNotifier(conn *amqp.Connection) *AMQPNotifier {
	return &AMQPNotifier{pub: NewAMQPPublisher(conn, NotificationQueue)}
}

func (n *AMQPNotifier) Notify(ctx context.Context, kind string, payload map[string]any) {
	body, err := json.Marshal(notificationMessage{Kind: kind, Payload: payload})
	if err != nil {
		utils.Error("notifier: marshal failed", map[string]any{"kind": kind, "error": err.Error()})
		return
	}
	if err := n.pub.publish(ctx, body); err != nil {
		utils.Error("notifier: publish failed", map[string]any{"kind": kind, "error": err.Error()})
	}
}

// orderMessage is the wire format consumed by the order service.
type orderMessage struct {
	AuctionID  string `json:"auction_id"`
	WinnerID   string `json:"winner_id"`
	FinalPrice int64  `json:"final_price"`
}

// AMQPOrderInitiator hands sold auctions to the order service.
type AMQPOrderInitiator struct {
	pub *AMQPPublisher
}

func NewAMQPOrderInitiator(conn *amqp.Connection) *AMQPOrderInitiator {
	return &AMQPOrderInitiator{pub: NewAMQPPublisher(conn, OrderQueue)}
}

func (o *AMQPOrderInitiator) OnAuctionClosed(ctx context.Context, auctionID, winnerID string, finalPrice int64) error {
	body, err := json.Marshal(orderMessage{AuctionID: auctionID, WinnerID: winnerID, FinalPrice: finalPrice})
	if err != nil {
		return fmt.Errorf("marshal order message: %w", err)
	}
	return o.pub.publish(ctx, body)
}
