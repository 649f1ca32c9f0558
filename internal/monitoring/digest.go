package monitoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Digest periodically mails the current vote tallies to the configured
// recipient.
type Digest struct {
	optionSvc services.OptionServiceProvider
	mailSvc   services.MailServiceProvider
	schedule  cron.Schedule
	done      chan bool
}

// NewDigest creates a digest job from a standard cron expression.
func NewDigest(optionSvc services.OptionServiceProvider, mailSvc services.MailServiceProvider, cronExpr string) (*Digest, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid digest cron expression: %w", err)
	}
	return &Digest{
		optionSvc: optionSvc,
		mailSvc:   mailSvc,
		schedule:  schedule,
		done:      make(chan bool),
	}, nil
}

// Run starts the digest loop, sleeping until each scheduled run.
func (d *Digest) Run() {
	log.Info().Msg("Starting tally digest scheduler")
	for {
		next := d.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-d.done:
			timer.Stop()
			log.Info().Msg("Stopping tally digest scheduler")
			return
		case <-timer.C:
			d.sendDigest()
		}
	}
}

// Stop halts the digest loop.
func (d *Digest) Stop() {
	d.done <- true
}

// sendDigest composes and mails the current tallies.
func (d *Digest) sendDigest() {
	options, err := d.optionSvc.ListOptions()
	if err != nil {
		log.Error().Err(err).Msg("Digest: failed to load tallies")
		return
	}

	var b strings.Builder
	for _, option := range options {
		fmt.Fprintf(&b, "%s: %d\n", option.Name, option.Votes)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = d.mailSvc.Send(ctx, services.ContactMessage{
		Name:    "newsvote",
		Subject: "Vote tally digest",
		Message: b.String(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Digest: failed to send mail")
		return
	}
	log.Info().Msg("Digest: tally mail sent")
}
