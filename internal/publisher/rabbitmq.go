package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	amqp "github.com/rabbitmq/amqp091-go"

	"breaking_news/internal/domain"
)

// RabbitMQ hands outgoing messages to the messaging adapter through a
// durable queue. It implements service.Sender.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL            string
	Exchange       string
	RoutingKey     string
	QueueName      string
	ConnectRetries uint
	RetryDelay     time.Duration
}

func NewRabbitMQ(ctx context.Context, cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := dial(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func dial(ctx context.Context, cfg Config, logger *slog.Logger) (*amqp.Connection, error) {
	attempts := cfg.ConnectRetries
	if attempts == 0 {
		attempts = 1
	}

	var conn *amqp.Connection
	err := retry.Do(
		func() error {
			c, err := amqp.Dial(cfg.URL)
			if err != nil {
				return err
			}
			conn = c
			return nil
		},
		retry.Attempts(attempts),
		retry.Delay(cfg.RetryDelay),
		retry.MaxDelay(30*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("rabbitmq dial failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	return conn, err
}

// OutgoingMessage is the JSON body published for every message.
type OutgoingMessage struct {
	User      domain.User            `json:"user"`
	Message   domain.OutgoingMessage `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
}

func (r *RabbitMQ) Send(ctx context.Context, user domain.User, message domain.OutgoingMessage) error {
	msg := OutgoingMessage{
		User:      user,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         string(message.Type),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published message",
		"user_id", user.ID,
		"type", message.Type,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
