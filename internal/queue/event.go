// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains the outbound mail queue.
package queue

// MailQueueName is the durable queue carrying verification mail events.
const MailQueueName = "mail.verification"

// VerificationMailEvent is published when a new account registers. It carries
// everything a mailer needs to compose the verification message without
// querying the primary database.
type VerificationMailEvent struct {
	UserID      uint64 `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	VerifyURL   string `json:"verify_url"`
	RequestedAt string `json:"requested_at"`
}
