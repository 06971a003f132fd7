// Package services holds the write-side flows: hospital onboarding, account
// signup and login, case reporting and patient alerts.
package services

import (
	"context"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/store"

	"go.uber.org/zap"
)

// Audit actions.
const (
	AuditApplicationSubmitted = "application_submitted"
	AuditApplicationApproved  = "application_approved"
	AuditApplicationRejected  = "application_rejected"
	AuditPayment              = "payment"
	AuditSignup               = "signup"
	AuditAlertSent            = "alert_sent"
	AuditContentCreated       = "content_created"
)

// audit writes an audit entry. A failing audit write is logged and never
// fails the action it describes.
func audit(ctx context.Context, log store.AuditStore, logger *zap.Logger, action, actor, details string) {
	if log == nil {
		return
	}
	if err := log.Record(ctx, action, actor, details); err != nil {
		logger.Warn("audit write failed", zap.String("action", action), zap.Error(err))
	}
}

// actorName is how an actor appears in the audit log.
func actorName(a access.Actor) string {
	if a.Email != "" {
		return a.Email
	}
	if a.IsAnonymous() {
		return "anonymous"
	}
	return a.Role
}
