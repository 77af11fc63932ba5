package forwarder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Pravhesh/GrievAI/internal/infrastructure/config"
)

type stubEmailSender struct {
	calls int
	err   error
}

func (s *stubEmailSender) SendEmail(_ context.Context, _, _ string) error {
	s.calls++
	return s.err
}

type stubSMSSender struct {
	calls int
	err   error
}

func (s *stubSMSSender) SendSMS(_ context.Context, _ string) error {
	s.calls++
	return s.err
}

func TestNotifier_Notify(t *testing.T) {
	log := zap.NewNop()

	t.Run("dispatches to both channels", func(t *testing.T) {
		email := &stubEmailSender{}
		sms := &stubSMSSender{}
		n := &Notifier{email: email, sms: sms, log: log}

		n.Notify(context.Background(), "New Grievance", "pothole on main street")

		assert.Equal(t, 1, email.calls)
		assert.Equal(t, 1, sms.calls)
	})

	t.Run("provider errors are swallowed", func(t *testing.T) {
		email := &stubEmailSender{err: errors.New("sendgrid down")}
		sms := &stubSMSSender{err: errors.New("twilio down")}
		n := &Notifier{email: email, sms: sms, log: log}

		// Must not panic or propagate anything.
		n.Notify(context.Background(), "subject", "message")

		assert.Equal(t, 1, email.calls)
		assert.Equal(t, 1, sms.calls)
	})

	t.Run("one failing channel does not block the other", func(t *testing.T) {
		email := &stubEmailSender{err: errors.New("sendgrid down")}
		sms := &stubSMSSender{}
		n := &Notifier{email: email, sms: sms, log: log}

		n.Notify(context.Background(), "subject", "message")

		assert.Equal(t, 1, sms.calls)
	})

	t.Run("disabled channels are simply skipped", func(t *testing.T) {
		n := &Notifier{log: log}
		n.Notify(context.Background(), "subject", "message")
	})
}

func TestNewNotifier_CapabilityChecks(t *testing.T) {
	log := zap.NewNop()

	t.Run("all channels disabled without credentials", func(t *testing.T) {
		n := NewNotifier(&config.NotifyConfig{}, log)
		assert.Nil(t, n.email)
		assert.Nil(t, n.sms)
	})

	t.Run("email enabled with full sendgrid config", func(t *testing.T) {
		n := NewNotifier(&config.NotifyConfig{
			SendGridAPIKey: "SG.test",
			EmailFrom:      "noreply@grievai.example",
			EmailTo:        "ward1@city.example, ward2@city.example",
		}, log)
		assert.NotNil(t, n.email)
		assert.Nil(t, n.sms)
	})

	t.Run("partial twilio config keeps sms disabled", func(t *testing.T) {
		n := NewNotifier(&config.NotifyConfig{
			TwilioAccountSID: "AC123",
			TwilioAuthToken:  "token",
		}, log)
		assert.Nil(t, n.sms)
	})

	t.Run("sms enabled with full twilio config", func(t *testing.T) {
		n := NewNotifier(&config.NotifyConfig{
			TwilioAccountSID: "AC123",
			TwilioAuthToken:  "token",
			TwilioFrom:       "+15550001111",
			SMSTo:            "+15550002222",
		}, log)
		assert.NotNil(t, n.sms)
	})

	t.Run("recipient list of only blanks disables email", func(t *testing.T) {
		n := NewNotifier(&config.NotifyConfig{
			SendGridAPIKey: "SG.test",
			EmailFrom:      "noreply@grievai.example",
			EmailTo:        " , ",
		}, log)
		assert.Nil(t, n.email)
	})
}
