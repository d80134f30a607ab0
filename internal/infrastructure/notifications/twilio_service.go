package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/pkg/logger"
)

// TwilioServiceImpl implements domain.NotificationService. SMS goes out
// through Twilio; email delivery is handed to the platform mailer and is
// logged here until that integration lands.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates a new Twilio notification service
func NewTwilioService(accountSID, authToken, fromNumber string) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	// Without configured credentials, log instead of sending.
	if t.fromNumber == "" {
		log := logger.Get()
		log.Info().Str("to", to).Str("body", message).Msg("mock sms delivery")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}

// SendEmail implements domain.NotificationService
func (t *TwilioServiceImpl) SendEmail(to, subject, body string) error {
	log := logger.Get()
	log.Info().Str("to", to).Str("subject", subject).Msg("mock email delivery")
	return nil
}
