package handlers

import (
	"github.com/rs/zerolog"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/pkg/logger"
)

// logAudit emits a business audit event as one structured log line.
// Failures log at warn so they surface in filtered production views.
func logAudit(e *domain.AuditEvent) {
	log := logger.Get()

	var evt *zerolog.Event
	if e.Success {
		evt = log.Info()
	} else {
		evt = log.Warn()
	}

	evt = evt.Str("event", string(e.EventType)).Time("at", e.Timestamp)
	if e.UserID != 0 {
		evt = evt.Uint("user_id", e.UserID)
	}
	if e.Contact != "" {
		evt = evt.Str("contact", e.Contact)
	}
	if e.UserType != "" {
		evt = evt.Str("user_type", string(e.UserType))
	}
	if e.ErrorMsg != "" {
		evt = evt.Str("error", e.ErrorMsg)
	}
	evt.Msg("audit")
}
