package notify

import (
	"context"
	"encoding/json"
	"time"

	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// message is the wire body consumed by the delivery workers.
type message struct {
	Template string            `json:"template"`
	UserID   string            `json:"user_id"`
	Channel  string            `json:"channel"`
	Data     map[string]string `json:"data,omitempty"`
	SentAt   time.Time         `json:"sent_at"`
}

// Publisher hands notifications to a topic exchange. Routing keys are
// "<prefix>.<channel>.<template>".
type Publisher struct {
	conn     *amqp.Connection
	ch       publishChannel
	exchange string
	prefix   string
	now      func() time.Time
}

func NewPublisher(cfg config.AMQPConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}
	p := newPublisher(ch, cfg.Exchange, cfg.RoutingKey)
	p.conn = conn
	return p, nil
}

func newPublisher(ch publishChannel, exchange, prefix string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, prefix: prefix, now: time.Now}
}

func (p *Publisher) Notify(ctx context.Context, n shared.Notification) error {
	body, err := json.Marshal(message{
		Template: string(n.Template),
		UserID:   n.UserID.String(),
		Channel:  string(n.Channel),
		Data:     n.Data,
		SentAt:   p.now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, p.routingKey(n), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", n.Template)
	}
	return nil
}

func (p *Publisher) routingKey(n shared.Notification) string {
	return p.prefix + "." + string(n.Channel) + "." + string(n.Template)
}

func (p *Publisher) Close() error {
	if c, ok := p.ch.(*amqp.Channel); ok && c != nil {
		_ = c.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
