package notify

import (
	"context"
	"encoding/json"

	"github.com/streadway/amqp"
)

// AMQPNotifier publishes notifications to a topic exchange, one routing key
// per event subject.
type AMQPNotifier struct {
	conn     *amqp.Connection
	exchange string
}

// NewAMQPNotifier declares the exchange and returns the notifier.
func NewAMQPNotifier(conn *amqp.Connection, exchange string) (*AMQPNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &AMQPNotifier{conn: conn, exchange: exchange}, nil
}

// Publish sends the notification as a JSON body routed by subject.
func (n *AMQPNotifier) Publish(_ context.Context, subject, message string) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(map[string]string{
		"subject": subject,
		"message": message,
	})

	return ch.Publish(
		n.exchange,
		routingKey(subject),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// routingKey turns a human subject like "New User Signup" into a dotted key.
func routingKey(subject string) string {
	key := make([]rune, 0, len(subject))
	for _, r := range subject {
		switch {
		case r >= 'A' && r <= 'Z':
			key = append(key, r+('a'-'A'))
		case r == ' ':
			key = append(key, '.')
		default:
			key = append(key, r)
		}
	}
	return "event." + string(key)
}
