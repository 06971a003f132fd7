package payments

import (
	"context"

	"afyajirani-backend/internal/apperr"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Midtrans creates a Snap transaction; the hospital pays on the redirect page
// and the result arrives later through the notification webhook.
type Midtrans struct {
	client snap.Client
}

func NewMidtrans(serverKey string, production bool) *Midtrans {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	m := &Midtrans{}
	m.client.New(serverKey, env)
	return m
}

func (m *Midtrans) Name() string { return ProviderMidtrans }

func (m *Midtrans) Charge(_ context.Context, charge Charge) (*Result, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  charge.Reference,
			GrossAmt: charge.Amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: charge.Name,
			Email: charge.Email,
			Phone: charge.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "ONBOARDING",
				Name:  charge.Description,
				Price: charge.Amount,
				Qty:   1,
			},
		},
	}

	resp, merr := m.client.CreateTransaction(req)
	if merr != nil {
		return nil, apperr.Wrap(apperr.PaymentUnavailable, "Midtrans Error", merr)
	}

	return &Result{
		Provider:        ProviderMidtrans,
		Reference:       charge.Reference,
		ProviderRef:     resp.Token,
		ResponseCode:    AcceptedCode,
		CustomerMessage: "Complete the payment on the Midtrans page",
		RedirectURL:     resp.RedirectURL,
	}, nil
}
