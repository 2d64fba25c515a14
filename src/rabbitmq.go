package main

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"

	"tweet-stats/src/ingest"
	"tweet-stats/src/tweets"
)

// RabbitMQConfig holds RabbitMQ connection configuration
type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Queue    string `yaml:"queue"`
}

// Validate reports the first unusable field.
func (c RabbitMQConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("empty host")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Queue == "" {
		return fmt.Errorf("empty queue name")
	}
	return nil
}

// URL builds the AMQP connection URL. Credentials are escaped.
func (c RabbitMQConfig) URL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/",
	}
	return u.String()
}

// RabbitMQ reads tweet records from a durable queue.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	config  RabbitMQConfig
}

// NewRabbitMQ creates a new RabbitMQ connection
func NewRabbitMQ(config RabbitMQConfig) (*RabbitMQ, error) {
	conn, err := amqp.Dial(config.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		config.Queue, // name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &RabbitMQ{
		conn:    conn,
		channel: ch,
		queue:   q,
		config:  config,
	}, nil
}

// Close closes the RabbitMQ connection
func (r *RabbitMQ) Close() error {
	if r == nil {
		return nil
	}
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// messageGetter is the part of *amqp.Channel that Drain needs.
type messageGetter interface {
	Get(queue string, autoAck bool) (amqp.Delivery, bool, error)
}

// Drain fetches the messages that were in the queue when it was declared,
// without acknowledging them. Messages published after that are left for the
// next run. Call Settle once the batch has been decoded.
func (r *RabbitMQ) Drain() ([]amqp.Delivery, error) {
	return drain(r.channel, r.config.Queue, r.queue.Messages)
}

func drain(ch messageGetter, queue string, limit int) ([]amqp.Delivery, error) {
	deliveries := make([]amqp.Delivery, 0, limit)
	for len(deliveries) < limit {
		msg, ok, err := ch.Get(queue, false)
		if err != nil {
			return deliveries, fmt.Errorf("failed to get message from %s: %w", queue, err)
		}
		if !ok {
			break
		}
		deliveries = append(deliveries, msg)
	}
	return deliveries, nil
}

// Settle acknowledges the whole batch when accept is true, otherwise returns
// every message to the queue.
func (r *RabbitMQ) Settle(deliveries []amqp.Delivery, accept bool) error {
	if len(deliveries) == 0 {
		return nil
	}
	last := deliveries[len(deliveries)-1].DeliveryTag
	if accept {
		if err := r.channel.Ack(last, true); err != nil {
			return fmt.Errorf("failed to ack %d messages: %w", len(deliveries), err)
		}
		return nil
	}
	if err := r.channel.Nack(last, true, true); err != nil {
		return fmt.Errorf("failed to requeue %d messages: %w", len(deliveries), err)
	}
	return nil
}

// messageBodies extracts the payload of each delivery.
func messageBodies(deliveries []amqp.Delivery) [][]byte {
	bodies := make([][]byte, len(deliveries))
	for i, d := range deliveries {
		bodies[i] = d.Body
	}
	return bodies
}

// loadFromQueue drains the configured queue into a table. The messages are
// acknowledged only when every record decodes.
func loadFromQueue(config RabbitMQConfig, logger *slog.Logger) (*tweets.Table, error) {
	mq, err := NewRabbitMQ(config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ingest.ErrIngestion, err)
	}
	defer mq.Close()

	logger.Info("Connected to RabbitMQ", "queue", config.Queue, "messages", mq.queue.Messages)

	deliveries, err := mq.Drain()
	if err != nil {
		if settleErr := mq.Settle(deliveries, false); settleErr != nil {
			logger.Error("Failed to requeue messages", "error", settleErr)
		}
		return nil, fmt.Errorf("%w: %v", ingest.ErrIngestion, err)
	}

	rows, err := ingest.DecodeMessages(messageBodies(deliveries), config.Queue)
	if settleErr := mq.Settle(deliveries, err == nil); settleErr != nil {
		logger.Error("Failed to settle messages", "error", settleErr, "accepted", err == nil)
		if err == nil {
			err = fmt.Errorf("%w: %v", ingest.ErrIngestion, settleErr)
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Drained queue", "queue", config.Queue, "records", len(rows))
	return tweets.NewTable(rows), nil
}
