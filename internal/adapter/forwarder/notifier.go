package forwarder

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/Pravhesh/GrievAI/internal/infrastructure/config"
)

// EmailSender dispatches a single email notification.
type EmailSender interface {
	SendEmail(ctx context.Context, subject, body string) error
}

// SMSSender dispatches a single SMS notification.
type SMSSender interface {
	SendSMS(ctx context.Context, body string) error
}

// Notifier fans a notification out to every configured channel. A nil
// sender means that channel was not configured; that is a normal state,
// not an error. Delivery failures are logged and swallowed so that
// notification problems never fail the calling request.
type Notifier struct {
	email EmailSender
	sms   SMSSender
	log   *zap.Logger
}

// NewNotifier builds a notifier from configuration. Channels with
// missing credentials come back disabled.
func NewNotifier(cfg *config.NotifyConfig, log *zap.Logger) *Notifier {
	n := &Notifier{log: log}

	if email := newSendGridSender(cfg); email != nil {
		n.email = email
	} else {
		log.Info("email notifications disabled: SendGrid not configured")
	}

	if sms := newTwilioSender(cfg); sms != nil {
		n.sms = sms
	} else {
		log.Info("SMS notifications disabled: Twilio not configured")
	}

	return n
}

// Notify dispatches the message on every enabled channel. It never
// returns an error; failures are logged per channel.
func (n *Notifier) Notify(ctx context.Context, subject, message string) {
	if n.email != nil {
		if err := n.email.SendEmail(ctx, subject, message); err != nil {
			n.log.Error("failed to send email notification", zap.Error(err))
		} else {
			n.log.Info("email notification sent", zap.String("subject", subject))
		}
	}

	if n.sms != nil {
		if err := n.sms.SendSMS(ctx, message); err != nil {
			n.log.Error("failed to send SMS notification", zap.Error(err))
		} else {
			n.log.Info("SMS notification sent")
		}
	}
}

// sendGridSender sends email through the SendGrid API.
type sendGridSender struct {
	client *sendgrid.Client
	from   string
	to     []string
}

func newSendGridSender(cfg *config.NotifyConfig) EmailSender {
	if cfg.SendGridAPIKey == "" || cfg.EmailFrom == "" || cfg.EmailTo == "" {
		return nil
	}

	var to []string
	for _, addr := range strings.Split(cfg.EmailTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	if len(to) == 0 {
		return nil
	}

	return &sendGridSender{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   cfg.EmailFrom,
		to:     to,
	}
}

func (s *sendGridSender) SendEmail(_ context.Context, subject, body string) error {
	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail("", s.from))
	message.Subject = subject

	p := sgmail.NewPersonalization()
	for _, addr := range s.to {
		p.AddTos(sgmail.NewEmail("", addr))
	}
	message.AddPersonalizations(p)
	message.AddContent(sgmail.NewContent("text/plain", body))

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// twilioSender sends SMS through the Twilio API.
type twilioSender struct {
	client *twilio.RestClient
	from   string
	to     string
}

func newTwilioSender(cfg *config.NotifyConfig) SMSSender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFrom == "" || cfg.SMSTo == "" {
		return nil
	}

	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioFrom,
		to:   cfg.SMSTo,
	}
}

func (s *twilioSender) SendSMS(_ context.Context, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(s.to)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	return nil
}
