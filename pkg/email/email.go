// Package email wraps the transactional email provider used for consultation
// notifications. The Sender interface keeps the pipeline testable; the Resend
// implementation is the one wired in production.
package email

import "context"

// Attachment is a single file attached to an outgoing email.
// Content holds the raw (decoded) bytes of the file.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a fully-prepared outgoing email.
type Message struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender delivers a prepared Message. Implementations must return an error
// the caller can act on; no retries are performed at this layer.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
