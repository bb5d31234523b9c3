// Package service publishes domain events to RabbitMQ. Publish errors are
// logged and returned so callers can ignore failures without interrupting
// the main request flow.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/soyummy/cookbook-api/internal/queue"
)

// MailPublisher pushes verification mail events onto the durable mail queue.
type MailPublisher struct {
	url string
	log *logrus.Logger
}

func NewMailPublisher(url string, log *logrus.Logger) *MailPublisher {
	return &MailPublisher{url: url, log: log}
}

// PublishVerification serializes the event and publishes it with a bounded
// connection lifetime. A broker outage only costs the mail, never the
// registration.
func (p *MailPublisher) PublishVerification(ev queue.VerificationMailEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.WithError(err).Warn("mail-publisher: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.WithError(err).Warn("mail-publisher: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue.MailQueueName, true, false, false, false, nil); err != nil {
		p.log.WithError(err).Warn("mail-publisher: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = ch.PublishWithContext(ctx, "", queue.MailQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.log.WithError(err).Warn("mail-publisher: publish failed")
	}
	return err
}
