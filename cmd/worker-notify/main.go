package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/paivaedu632/dental-sub001/internal/notify"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/utils"
)

func main() {
	sender := notify.NewMailgunNotifier(
		utils.Config("MAILGUN_DOMAIN"),
		utils.Config("MAILGUN_API_KEY"),
		utils.Config("MAILGUN_SENDER"),
	)

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	// Ensure queue exists
	q, _ := ch.QueueDeclare(notify.TaskQueue, true, false, false, false, nil)

	// Prefetch(1) ensures the worker doesn't hog all tasks if one is slow
	ch.Qos(1, 0, false)
	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	log.Println("Notification worker ready. Waiting for tasks...")

	for d := range msgs {
		var task models.Notification
		if err := json.Unmarshal(d.Body, &task); err != nil {
			log.Printf("Error decoding task: %v", err)
			d.Ack(false) // Drop malformed messages
			continue
		}

		if err := sender.Send(context.Background(), task); err != nil {
			log.Printf("Error sending %s notification to %s: %v", task.Kind, task.To, err)
			d.Nack(false, true) // Requeue for retry
		} else {
			d.Ack(false)
		}
	}
}
