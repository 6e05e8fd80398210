package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mehrsalabs/leadbot/internal/infra/http/middleware"
)

// LeadNotifier delivers a lead alert to the sales team.
type LeadNotifier interface {
	SendLeadAlert(payload LeadRegisteredPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] consume %s: %s", queueName, err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadRegisteredPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid lead payload: %s", err)
				// Malformed message, reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] lead registered: %s (%s, channel=%s)", payload.Name, payload.Identity, payload.Channel)

			if err := w.Notifier.SendLeadAlert(payload); err != nil {
				log.Printf("❌ [WORKER] lead alert failed: %s", err)
				// Send to the DLQ; delivery problems need a human anyway.
				middleware.RecordIntegrationError("mail")
				d.Nack(false, false)
			} else {
				middleware.RecordLeadRegistered()
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}
