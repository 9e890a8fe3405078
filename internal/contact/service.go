package contact

import (
	"context"
	"errors"
	"time"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Outcomes reported to a Recorder.
const (
	OutcomeSent    = "sent"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

const (
	successMessage = "Thank you for your message! I'll get back to you soon."
	genericFailure = "Sorry, there was an error sending your message. Please try again later."
	invalidMessage = "Please fill in all required fields."
)

// Sender delivers a validated submission.
type Sender interface {
	Name() string
	Send(ctx context.Context, sub Submission) error
}

// Recorder observes submission outcomes.
type Recorder interface {
	RecordContactSubmission(channel, outcome string)
}

// Options selects a delivery channel.
type Options struct {
	Endpoint string
	Timeout  time.Duration
	SMTP     SMTPSettings
}

// NewSender picks the API when an endpoint is set, otherwise SMTP when
// credentials are present. With neither every Send fails with ErrNotConfigured.
func NewSender(opts Options) Sender {
	switch {
	case opts.Endpoint != "":
		return NewAPISender(opts.Endpoint, opts.Timeout)
	case opts.SMTP.Enabled():
		return NewSMTPSender(opts.SMTP)
	default:
		return nopSender{}
	}
}

// Service validates and delivers submissions.
type Service struct {
	sender   Sender
	logger   logger.Logger
	recorder Recorder
}

// NewService creates a Service. recorder may be nil.
func NewService(sender Sender, log logger.Logger, recorder Recorder) *Service {
	return &Service{sender: sender, logger: log, recorder: recorder}
}

// Channel names the configured delivery channel.
func (s *Service) Channel() string {
	return s.sender.Name()
}

// Submit validates sub and sends it once. The normalized submission is
// returned in every case so a form can be re-rendered with the user's input.
func (s *Service) Submit(ctx context.Context, sub Submission) (Submission, error) {
	sub = sub.Normalize()
	log := s.logger.With(logger.String("channel", s.sender.Name()))

	if err := sub.Validate(); err != nil {
		log.Debug("Contact submission rejected", logger.Error(err))
		s.record(OutcomeInvalid)
		return sub, err
	}

	if err := s.sender.Send(ctx, sub); err != nil {
		log.Error("Contact submission failed", logger.Error(err))
		s.record(OutcomeFailed)
		return sub, err
	}

	log.Info("Contact submission sent", logger.String("email", sub.Email))
	s.record(OutcomeSent)
	return sub, nil
}

func (s *Service) record(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordContactSubmission(s.sender.Name(), outcome)
	}
}

// SuccessMessage is shown after a submission is delivered.
func SuccessMessage() string { return successMessage }

// UserMessage turns a Submit error into the text shown to the visitor: the
// API's detail when it gave one, otherwise a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrValidation) {
		return invalidMessage
	}
	var de *DeliveryError
	if errors.As(err, &de) && de.Detail != "" {
		return de.Detail
	}
	return genericFailure
}

// FieldErrors returns per-field messages for a validation failure, or nil.
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
