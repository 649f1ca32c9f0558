package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	mail "github.com/wneessen/go-mail"
)

// UnconfiguredSender rejects every delivery. It stands in for the relay
// client when no SMTP host is configured.
type UnconfiguredSender struct{}

func (UnconfiguredSender) DialAndSend(messages ...*mail.Msg) error {
	return errors.New("no SMTP relay configured")
}

// ContactMessage is the contact-form payload relayed by mail.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SMTPSender abstracts the relay client so tests can stub delivery.
// *mail.Client satisfies it.
type SMTPSender interface {
	DialAndSend(messages ...*mail.Msg) error
}

// MailServiceProvider defines the interface for outbound mail.
type MailServiceProvider interface {
	Send(ctx context.Context, msg ContactMessage) error
}

type mailJob struct {
	msg    ContactMessage
	result chan error
}

// MailService delivers contact messages through a single worker goroutine.
// Each queued job carries its own result channel, so callers still observe
// delivery failure even though delivery runs off the request goroutine.
type MailService struct {
	sender SMTPSender
	from   string
	to     string
	queue  chan mailJob
	done   chan struct{}
}

// NewMailService creates a new MailService relaying from from to to.
func NewMailService(sender SMTPSender, from, to string) *MailService {
	return &MailService{
		sender: sender,
		from:   from,
		to:     to,
		queue:  make(chan mailJob),
		done:   make(chan struct{}),
	}
}

// Run starts the delivery worker loop.
func (s *MailService) Run() {
	for {
		select {
		case <-s.done:
			return
		case job := <-s.queue:
			job.result <- s.deliver(job.msg)
		}
	}
}

// Stop halts the delivery worker.
func (s *MailService) Stop() {
	close(s.done)
}

// Send queues a message and waits for its delivery result or ctx expiry.
func (s *MailService) Send(ctx context.Context, msg ContactMessage) error {
	job := mailJob{msg: msg, result: make(chan error, 1)}

	select {
	case s.queue <- job:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-job.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// deliver composes and sends a single message through the relay.
func (s *MailService) deliver(msg ContactMessage) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(s.to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", msg.Name, msg.Email, msg.Message))

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("mail relay failed: %w", err)
	}

	log.Info().Str("subject", msg.Subject).Msg("Email sent")
	return nil
}
