package services

import (
	"context"
	"testing"

	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSettleByProviderRefUpdatesPaymentAndApplication(t *testing.T) {
	updated := map[string]string{}
	paymentStore := &MockPaymentStore{
		FindByProviderRefFunc: func(_ context.Context, ref string) (*models.Payment, error) {
			if ref == "ws_CO_9" {
				return &models.Payment{Reference: "AFJ-1"}, nil
			}
			return nil, apperr.New(apperr.NotFound, "Payment: not found")
		},
		UpdateStatusFunc: func(_ context.Context, ref, status string) error {
			updated["payment:"+ref] = status
			return nil
		},
	}
	hospitals := &MockHospitalStore{UpdatePaymentStatusFunc: func(_ context.Context, ref, status string) error {
		updated["application:"+ref] = status
		return nil
	}}
	p := NewPayments(&MockProvider{}, paymentStore, hospitals, &MockAuditStore{}, zap.NewNop())

	require.NoError(t, p.SettleByProviderRef(context.Background(), "ws_CO_9", models.PaymentPaid))
	assert.Equal(t, map[string]string{
		"payment:AFJ-1":     models.PaymentPaid,
		"application:AFJ-1": models.PaymentPaid,
	}, updated)

	err := p.SettleByProviderRef(context.Background(), "unknown", models.PaymentPaid)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestSTKPushRecordsPayment(t *testing.T) {
	var saved *models.Payment
	paymentStore := &MockPaymentStore{CreateFunc: func(_ context.Context, p *models.Payment) error {
		saved = p
		return nil
	}}
	provider := &MockProvider{ChargeFunc: func(_ context.Context, c payments.Charge) (*payments.Result, error) {
		return &payments.Result{Provider: "mock", Reference: c.Reference, ProviderRef: "ws_CO_1", ResponseCode: "0"}, nil
	}}
	p := NewPayments(provider, paymentStore, &MockHospitalStore{}, &MockAuditStore{}, zap.NewNop())

	res, err := p.STKPush(context.Background(), models.STKPushInput{Phone: "254700000000", Amount: 100})
	require.NoError(t, err)
	assert.True(t, res.Accepted())
	require.NotNil(t, saved)
	assert.Equal(t, "ws_CO_1", saved.ProviderRef)
	assert.Equal(t, models.PaymentInitiated, saved.Status)
}

func TestSTKPushWithoutProvider(t *testing.T) {
	p := NewPayments(nil, &MockPaymentStore{}, &MockHospitalStore{}, &MockAuditStore{}, zap.NewNop())
	_, err := p.STKPush(context.Background(), models.STKPushInput{Phone: "1", Amount: 1})
	assert.True(t, apperr.IsKind(err, apperr.PaymentUnavailable))
}
