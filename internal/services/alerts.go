package services

import (
	"context"
	"fmt"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/analytics"
	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/notify"
	"afyajirani-backend/internal/store"
	"afyajirani-backend/pkg/utils"

	"go.uber.org/zap"
)

// Alert channels.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelSMS      = "sms"
	ChannelPush     = "push"
)

// AlertSender relays whatsapp and sms alerts through the analytics service.
type AlertSender interface {
	SendAlert(ctx context.Context, alert analytics.Alert) error
}

type Alerts struct {
	patients store.PatientStore
	sender   AlertSender
	pusher   notify.Pusher
	audit    store.AuditStore
	logger   *zap.Logger
}

func NewAlerts(patients store.PatientStore, sender AlertSender, pusher notify.Pusher, auditLog store.AuditStore, logger *zap.Logger) *Alerts {
	return &Alerts{patients: patients, sender: sender, pusher: pusher, audit: auditLog, logger: logger.Named("alerts")}
}

type AlertResult struct {
	Channel    string `json:"channel"`
	Recipients int    `json:"recipients"`
	Delivered  int    `json:"delivered"`
}

// Patients lists the patients an actor may alert: their own hospital's, or
// everyone's for an admin.
func (a *Alerts) Patients(ctx context.Context, actor access.Actor) ([]models.Patient, error) {
	return a.patients.List(ctx, scope(actor))
}

// Send delivers message to the selected patients. Patients outside the
// actor's hospital are silently dropped from the selection.
func (a *Alerts) Send(ctx context.Context, in models.AlertInput, actor access.Actor) (*AlertResult, error) {
	message := utils.CleanText(in.Message)
	if message == "" {
		return nil, apperr.Validation("Message is required")
	}

	patients, err := a.patients.FindByIDs(ctx, scope(actor), in.PatientIDs)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, apperr.Validation("No matching patients selected")
	}

	result := &AlertResult{Channel: in.Channel, Recipients: len(patients)}

	switch in.Channel {
	case ChannelWhatsApp, ChannelSMS:
		ids := make([]uint64, len(patients))
		for i, p := range patients {
			ids[i] = p.ID
		}
		if err := a.sender.SendAlert(ctx, analytics.Alert{PatientIDs: ids, Message: message, Channel: in.Channel}); err != nil {
			return nil, err
		}
		result.Delivered = len(ids)

	case ChannelPush:
		if a.pusher == nil || !a.pusher.Enabled() {
			return nil, apperr.Validation("Push alerts are not configured")
		}
		tokens := make([]string, 0, len(patients))
		for _, p := range patients {
			if p.FCMToken != "" {
				tokens = append(tokens, p.FCMToken)
			}
		}
		if len(tokens) == 0 {
			return nil, apperr.Validation("None of the selected patients can receive push alerts")
		}
		sent, err := a.pusher.Push(ctx, tokens, notify.Message{
			Title: "AfyaJirani health alert",
			Body:  message,
			Data:  map[string]string{"type": "outbreak_alert"},
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.NotificationUnavailable, analytics.MsgSendAlert, err)
		}
		result.Delivered = sent

	default:
		return nil, apperr.Validation("Channel must be whatsapp, sms or push")
	}

	audit(ctx, a.audit, a.logger, AuditAlertSent, actorName(actor),
		fmt.Sprintf("channel=%s, recipients=%d, delivered=%d", in.Channel, result.Recipients, result.Delivered))
	return result, nil
}

func scope(actor access.Actor) *uint64 {
	if actor.IsAdmin() {
		return nil
	}
	if actor.HospitalID == nil {
		// no hospital, no patients
		none := uint64(0)
		return &none
	}
	return actor.HospitalID
}
