// Package mailer delivers the rendered article via an authenticated
// SMTP relay.
package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	u "github.com/jayt9/article-downloader/internal/utils"
)

// attachmentName is the generic filename the recipient sees.
const attachmentName = "article.pdf"

// Message is a fully-prepared email with one PDF attachment.
type Message struct {
	From           string
	To             string
	Subject        string
	Body           string
	AttachmentPath string
}

// SMTPMailer sends messages through the configured relay over implicit
// TLS. Sends are synchronous; a failed send is reported immediately.
type SMTPMailer struct {
	cfg u.SMTPConfig
}

// New creates an SMTPMailer.
func New(cfg u.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// compose builds the multipart message: plain-text body plus the PDF
// as a binary attachment.
func compose(msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	m.AttachFile(msg.AttachmentPath, gomail.WithFileName(attachmentName))
	return m, nil
}

// Send opens an encrypted connection to the relay, authenticates and
// sends the message.
func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	m, err := compose(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.User),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("relay client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, m)
}
