package mocks

import "github.com/realtorcrm/authsvc/domain"

// MockNotificationService implements domain.NotificationService for testing.
// Sent messages are recorded so tests can assert on delivery.
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	SentSMS    []SentMessage
	SentEmails []SentMessage
}

// SentMessage records one delivered notification
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotificationService creates a new MockNotificationService
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.SentSMS = append(m.SentSMS, SentMessage{To: to, Body: message})
	return nil
}

func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.SentEmails = append(m.SentEmails, SentMessage{To: to, Subject: subject, Body: body})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
