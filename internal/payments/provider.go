// Package payments collects the onboarding fee from an applying hospital.
// Three providers exist: the analytics service's M-Pesa relay, M-Pesa Daraja
// called directly, and Midtrans Snap.
package payments

import (
	"context"
	"fmt"

	"afyajirani-backend/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Provider names, as configured through PAYMENT_PROVIDER.
const (
	ProviderAnalytics = "analytics"
	ProviderMpesa     = "mpesa"
	ProviderMidtrans  = "midtrans"
)

// AcceptedCode is the ResponseCode meaning the provider took the request.
const AcceptedCode = "0"

// Charge is one fee request.
type Charge struct {
	Reference   string
	Phone       string
	Email       string
	Name        string
	Amount      int64
	Description string
}

// Result is what the provider answered.
type Result struct {
	Provider        string `json:"provider"`
	Reference       string `json:"reference"`
	ProviderRef     string `json:"provider_ref,omitempty"`
	ResponseCode    string `json:"response_code"`
	CustomerMessage string `json:"customer_message"`
	RedirectURL     string `json:"redirect_url,omitempty"`
}

// Accepted reports whether the payment prompt went out.
func (r *Result) Accepted() bool { return r.ResponseCode == AcceptedCode }

type Provider interface {
	Name() string
	Charge(ctx context.Context, charge Charge) (*Result, error)
}

// NewReference returns a fresh payment reference.
func NewReference() string {
	return "AFJ-" + uuid.NewString()
}

// FromConfig picks the provider named by cfg.PaymentProvider. relay is the
// analytics client, used by the analytics provider.
func FromConfig(cfg *config.Config, relay STKRelay, logger *zap.Logger) (Provider, error) {
	switch cfg.PaymentProvider {
	case ProviderAnalytics:
		return NewRelay(relay), nil
	case ProviderMpesa:
		return NewDaraja(DarajaConfig{
			BaseURL:        cfg.MpesaBaseURL,
			ConsumerKey:    cfg.MpesaConsumerKey,
			ConsumerSecret: cfg.MpesaConsumerSecret,
			Shortcode:      cfg.MpesaShortcode,
			Passkey:        cfg.MpesaPasskey,
			CallbackURL:    cfg.MpesaCallbackURL,
		}, cfg.AnalyticsTimeout, logger), nil
	case ProviderMidtrans:
		return NewMidtrans(cfg.MidtransServerKey, cfg.MidtransProduction), nil
	}
	return nil, fmt.Errorf("unknown payment provider %q", cfg.PaymentProvider)
}
