package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// Ключи маршрутизации событий.
const (
	RoutingSubscriptionActivated = "subscription.activated"
	RoutingCallOriginated        = "call.originated"
)

// SubscriptionActivated публикуется после записи новой подписки.
type SubscriptionActivated struct {
	UserID    int64  `json:"user_id"`
	Phone     string `json:"phone"`
	Plan      string `json:"plan"`
	ExpiresAt int64  `json:"expires_at"`
	Manual    bool   `json:"manual"`
}

// CallOriginated публикуется после записи симулированного звонка.
type CallOriginated struct {
	UserID       int64  `json:"user_id"`
	Phone        string `json:"phone"`
	CallRef      string `json:"call_ref"`
	ClientNumber string `json:"client_number"`
	Mode         string `json:"mode"`
	Status       string `json:"status"`
}

// Publisher публикует JSON-сообщения в один exchange.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewPublisher подключается к брокеру и готовит exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := Connect(url, 3, time.Second)
	if err != nil {
		return nil, err
	}
	ch, err := SetupChannel(conn, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish публикует message с ключом routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, message any) error {
	const op = "rabbitmq.Publish"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return PublishMessage(p.ch, p.exchange, routingKey, message)
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// PublishMessage публикует сообщение в RabbitMQ.
func PublishMessage(ch *amqp.Channel, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Nop — издатель, который ничего не отправляет. Используется без AMQP_URL.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
