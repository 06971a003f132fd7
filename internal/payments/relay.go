package payments

import (
	"context"

	"afyajirani-backend/internal/analytics"
)

// STKRelay is the part of the analytics client that forwards STK pushes.
type STKRelay interface {
	STKPush(ctx context.Context, phone string, amount int64) (*analytics.STKPushResult, error)
}

// Relay sends the STK push through the analytics service's /mpesa/stkpush.
type Relay struct {
	relay STKRelay
}

func NewRelay(relay STKRelay) *Relay {
	return &Relay{relay: relay}
}

func (r *Relay) Name() string { return ProviderAnalytics }

func (r *Relay) Charge(ctx context.Context, charge Charge) (*Result, error) {
	res, err := r.relay.STKPush(ctx, charge.Phone, charge.Amount)
	if err != nil {
		return nil, err
	}
	return &Result{
		Provider:        ProviderAnalytics,
		Reference:       charge.Reference,
		ProviderRef:     res.CheckoutRequestID,
		ResponseCode:    res.ResponseCode,
		CustomerMessage: res.CustomerMessage,
	}, nil
}
