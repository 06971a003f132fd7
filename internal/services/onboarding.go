package services

import (
	"context"
	"errors"
	"fmt"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/invite"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/payments"
	"afyajirani-backend/internal/store"
	"afyajirani-backend/pkg/utils"

	"go.uber.org/zap"
)

// MaxInviteAttempts bounds how many codes Approve tries before giving up.
const MaxInviteAttempts = 5

// Onboarding takes a hospital from application to approved hospital with an
// invite code.
type Onboarding struct {
	hospitals store.HospitalStore
	payments  store.PaymentStore
	audit     store.AuditStore
	provider  payments.Provider
	fee       int64
	newCode   func() (string, error)
	logger    *zap.Logger
}

// NewOnboarding wires the flow. A nil provider or a zero fee skips the
// payment step.
func NewOnboarding(hospitals store.HospitalStore, paymentStore store.PaymentStore, auditLog store.AuditStore,
	provider payments.Provider, fee int64, logger *zap.Logger) *Onboarding {
	return &Onboarding{
		hospitals: hospitals,
		payments:  paymentStore,
		audit:     auditLog,
		provider:  provider,
		fee:       fee,
		newCode:   invite.Generate,
		logger:    logger.Named("onboarding"),
	}
}

type ApplyResult struct {
	Application *models.HospitalApplication `json:"application"`
	Payment     *payments.Result            `json:"payment,omitempty"`
}

// Apply charges the onboarding fee (when one is set) and then stores a
// pending application. A declined charge stores nothing.
func (o *Onboarding) Apply(ctx context.Context, in models.HospitalApplicationInput) (*ApplyResult, error) {
	app := &models.HospitalApplication{
		Name:               utils.CleanText(in.Name),
		RegistrationNumber: utils.CleanText(in.RegistrationNumber),
		Address:            utils.CleanText(in.Address),
		ContactEmail:       utils.CleanText(in.ContactEmail),
		Phone:              utils.CleanText(in.Phone),
		Status:             models.ApplicationPending,
		PaymentStatus:      models.PaymentNone,
	}
	if app.Name == "" || app.RegistrationNumber == "" {
		return nil, apperr.Validation("Hospital name and registration number are required")
	}

	// 1. Onboarding fee
	var result *payments.Result
	if o.provider != nil && o.fee > 0 {
		charge := payments.Charge{
			Reference:   payments.NewReference(),
			Phone:       app.Phone,
			Email:       app.ContactEmail,
			Name:        app.Name,
			Amount:      o.fee,
			Description: "Hospital Onboarding Fee",
		}
		res, err := o.provider.Charge(ctx, charge)
		if err != nil {
			return nil, err
		}
		if !res.Accepted() {
			msg := res.CustomerMessage
			if msg == "" {
				msg = "Payment request was declined"
			}
			return nil, apperr.Validation(msg)
		}
		result = res
		app.PaymentReference = res.Reference
		app.PaymentStatus = models.PaymentInitiated
	}

	// 2. Application row
	if err := o.hospitals.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	// 3. Payment row, so callbacks can find the application again
	if result != nil {
		payment := &models.Payment{
			ApplicationID: &app.ID,
			Provider:      result.Provider,
			Reference:     result.Reference,
			ProviderRef:   result.ProviderRef,
			Phone:         app.Phone,
			Amount:        o.fee,
			Status:        models.PaymentInitiated,
		}
		if err := o.payments.Create(ctx, payment); err != nil {
			o.logger.Error("payment row not saved",
				zap.Uint64("application_id", app.ID),
				zap.String("reference", result.Reference),
				zap.Error(err),
			)
		}
		audit(ctx, o.audit, o.logger, AuditPayment, app.ContactEmail,
			fmt.Sprintf("amount=%d, phone=%s, provider=%s", o.fee, app.Phone, result.Provider))
	}

	audit(ctx, o.audit, o.logger, AuditApplicationSubmitted, app.ContactEmail,
		fmt.Sprintf("application_id=%d, name=%s", app.ID, app.Name))

	return &ApplyResult{Application: app, Payment: result}, nil
}

func (o *Onboarding) ListApplications(ctx context.Context, status string) ([]models.HospitalApplication, error) {
	switch status {
	case "", models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected:
	default:
		return nil, apperr.Validation("Unknown application status")
	}
	return o.hospitals.ListApplications(ctx, status)
}

func (o *Onboarding) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	return o.hospitals.ListHospitals(ctx)
}

// Approve turns a pending application into a hospital with a fresh invite
// code. A code already held by another hospital is replaced and the
// approval retried, up to MaxInviteAttempts times.
func (o *Onboarding) Approve(ctx context.Context, id uint64, admin access.Actor) (*models.Hospital, error) {
	for attempt := 1; attempt <= MaxInviteAttempts; attempt++ {
		code, err := o.newCode()
		if err != nil {
			return nil, err
		}

		hospital, err := o.hospitals.ApproveApplication(ctx, id, code)
		if errors.Is(err, store.ErrInviteCodeTaken) {
			o.logger.Info("invite code collision, retrying", zap.Uint64("application_id", id), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}

		audit(ctx, o.audit, o.logger, AuditApplicationApproved, actorName(admin),
			fmt.Sprintf("application_id=%d, hospital_id=%d", id, hospital.ID))
		return hospital, nil
	}

	return nil, apperr.Data("Could not allocate a unique invite code, try again", store.ErrInviteCodeTaken)
}

func (o *Onboarding) Reject(ctx context.Context, id uint64, admin access.Actor) (*models.HospitalApplication, error) {
	app, err := o.hospitals.RejectApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	audit(ctx, o.audit, o.logger, AuditApplicationRejected, actorName(admin), fmt.Sprintf("application_id=%d", id))
	return app, nil
}
