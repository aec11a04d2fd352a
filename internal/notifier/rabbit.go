package notifier

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/evermeet/booking-go/internal/application"
)

// Client publishes registration notifications to RabbitMQ and feeds
// the email worker on the consuming side.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
}

func NewClient(url, exchange, queue string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to RabbitMQ")
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		log.Error().Err(err).Msg("failed to open RabbitMQ channel")
		return nil, err
	}

	client := &Client{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		queue:    queue,
	}

	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		log.Error().Err(err).Msg("failed to declare exchange")
		return nil, err
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to declare queue")
		return nil, err
	}

	if err := ch.QueueBind(q.Name, q.Name, exchange, false, nil); err != nil {
		log.Error().Err(err).Msg("failed to bind queue")
		return nil, err
	}

	return client, nil
}

func (c *Client) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Publish serializes the notification and hands it to the broker.
// Implements application.Notifier.
func (c *Client) Publish(n application.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return c.channel.Publish(
		c.exchange,
		c.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Consume delivers each queued notification to handler. A handler
// error requeues the message once; repeated failures drop it.
func (c *Client) Consume(handler func(application.Notification) error) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for d := range deliveries {
		var n application.Notification
		if err := json.Unmarshal(d.Body, &n); err != nil {
			log.Warn().Err(err).Msg("dropping malformed notification")
			_ = d.Nack(false, false)
			continue
		}

		if err := handler(n); err != nil {
			log.Warn().Err(err).Str("registration_id", n.RegistrationID).Msg("notification handler failed")
			_ = d.Nack(false, !d.Redelivered)
			continue
		}
		_ = d.Ack(false)
	}
	return nil
}
