package notify

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/paivaedu632/dental-sub001/models"
)

const TaskQueue = "notification_tasks"

// QueueNotifier hands delivery off to the worker_notify consumer instead of
// calling Mailgun inline.
type QueueNotifier struct {
	ch *amqp.Channel
}

func NewQueueNotifier(conn *amqp.Connection) (*QueueNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "opening channel")
	}
	// Ensure queue exists
	if _, err := ch.QueueDeclare(TaskQueue, true, false, false, false, nil); err != nil {
		return nil, errors.Wrap(err, "declaring queue")
	}
	return &QueueNotifier{ch: ch}, nil
}

func (q *QueueNotifier) Send(ctx context.Context, n models.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "encoding notification task")
	}
	err = q.ch.PublishWithContext(ctx, "", TaskQueue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	return errors.Wrap(err, "publishing notification task")
}
