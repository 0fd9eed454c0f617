package mq

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"slot-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type dialFunc func() (channel, io.Closer, error)

// AMQPPublisher publishes persistent JSON messages to a topic exchange.
// A channel or connection closed by the broker is re-opened on the next
// publish.
type AMQPPublisher struct {
	mu       sync.Mutex
	dial     dialFunc
	conn     io.Closer
	ch       channel
	exchange string
	logger   *slog.Logger
}

func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	return newPublisher(exchange, logger, func() (channel, io.Closer, error) {
		return dialExchange(url, exchange)
	})
}

func newPublisher(exchange string, logger *slog.Logger, dial dialFunc) (*AMQPPublisher, error) {
	p := &AMQPPublisher{dial: dial, exchange: exchange, logger: logger}
	if err := p.open(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialExchange(url, exchange string) (channel, io.Closer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrapf(err, "declare exchange %s", exchange)
	}
	return ch, conn, nil
}

// open replaces the current session. Callers hold mu, except the constructor.
func (p *AMQPPublisher) open() error {
	p.closeSession()
	ch, conn, err := p.dial()
	if err != nil {
		return err
	}
	p.ch, p.conn = ch, conn
	return nil
}

func (p *AMQPPublisher) closeSession() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Publish is safe for concurrent use; amqp channels are not.
func (p *AMQPPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		if err := p.open(); err != nil {
			return errs.Wrap(err, "reopen rabbitmq channel")
		}
	}
	err := p.publish(ctx, topic, body)
	if !errors.Is(err, amqp.ErrClosed) {
		return err
	}

	p.logger.WarnContext(ctx, "rabbitmq channel closed, reconnecting", "exchange", p.exchange)
	if err := p.open(); err != nil {
		return errs.Wrap(err, "reopen rabbitmq channel")
	}
	return p.publish(ctx, topic, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, topic string, body []byte) error {
	err := p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil && !errors.Is(err, amqp.ErrClosed) {
		return errs.Wrapf(err, "publish %s", topic)
	}
	return err
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// LogPublisher writes messages to the log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, topic string, body []byte) error {
	p.logger.Info("notification (demo)", "topic", topic, "payload", string(body))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
