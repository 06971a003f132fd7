package services

import (
	"context"
	"fmt"

	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/payments"
	"afyajirani-backend/internal/store"

	"go.uber.org/zap"
)

// Payments starts ad-hoc STK pushes and settles provider callbacks.
type Payments struct {
	provider  payments.Provider
	payments  store.PaymentStore
	hospitals store.HospitalStore
	audit     store.AuditStore
	logger    *zap.Logger
}

func NewPayments(provider payments.Provider, paymentStore store.PaymentStore, hospitals store.HospitalStore,
	auditLog store.AuditStore, logger *zap.Logger) *Payments {
	return &Payments{
		provider:  provider,
		payments:  paymentStore,
		hospitals: hospitals,
		audit:     auditLog,
		logger:    logger.Named("payments"),
	}
}

// STKPush prompts a phone for a payment that is not tied to an application.
func (p *Payments) STKPush(ctx context.Context, in models.STKPushInput) (*payments.Result, error) {
	if p.provider == nil {
		return nil, apperr.New(apperr.PaymentUnavailable, "Payments are not configured")
	}

	res, err := p.provider.Charge(ctx, payments.Charge{
		Reference:   payments.NewReference(),
		Phone:       in.Phone,
		Amount:      in.Amount,
		Description: "AfyaJirani payment",
	})
	if err != nil {
		return nil, err
	}

	status := models.PaymentInitiated
	if !res.Accepted() {
		status = models.PaymentFailed
	}
	if err := p.payments.Create(ctx, &models.Payment{
		Provider:    res.Provider,
		Reference:   res.Reference,
		ProviderRef: res.ProviderRef,
		Phone:       in.Phone,
		Amount:      in.Amount,
		Status:      status,
	}); err != nil {
		p.logger.Error("payment row not saved", zap.String("reference", res.Reference), zap.Error(err))
	}

	audit(ctx, p.audit, p.logger, AuditPayment, in.Phone, fmt.Sprintf("amount=%d, phone=%s", in.Amount, in.Phone))
	return res, nil
}

// Settle records the final status of the payment with our reference and
// mirrors it onto the application that paid with it.
func (p *Payments) Settle(ctx context.Context, reference, status string) error {
	if err := p.payments.UpdateStatus(ctx, reference, status); err != nil {
		return err
	}
	if err := p.hospitals.UpdatePaymentStatus(ctx, reference, status); err != nil {
		return err
	}
	p.logger.Info("payment settled", zap.String("reference", reference), zap.String("status", status))
	return nil
}

// SettleByProviderRef is Settle for callbacks that only carry the
// provider's id (M-Pesa CheckoutRequestID).
func (p *Payments) SettleByProviderRef(ctx context.Context, providerRef, status string) error {
	payment, err := p.payments.FindByProviderRef(ctx, providerRef)
	if err != nil {
		return err
	}
	return p.Settle(ctx, payment.Reference, status)
}
