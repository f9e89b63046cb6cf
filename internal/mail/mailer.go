package mail

import "context"

// Package mail contains the outbound notification transport. Sends are
// fire-and-forget: no queueing, no retry, no delivery confirmation.

// Message is a plain-text notification email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer sends a single plain-text message over the configured relay.
type Mailer interface {
	// Send connects to the relay, upgrades to TLS, authenticates and
	// transmits the message. Any failure is returned as-is for the caller
	// to surface to the acting user; there is no retry.
	Send(ctx context.Context, msg Message) error
}
