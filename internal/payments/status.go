package payments

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"afyajirani-backend/internal/models"
)

// MidtransNotification is the part of the Midtrans webhook body we read.
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

// MidtransSignature is the signature_key Midtrans sends with a notification:
// hex SHA-512 of order_id + status_code + gross_amount + server key.
func MidtransSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether the notification was signed with serverKey. An
// empty key verifies nothing.
func (n MidtransNotification) Verify(serverKey string) bool {
	if serverKey == "" || n.SignatureKey == "" {
		return false
	}
	want := MidtransSignature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(want), []byte(n.SignatureKey)) == 1
}

// Status maps the Midtrans transaction state to a payment status.
func (n MidtransNotification) Status() string {
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "accept" {
			return models.PaymentPaid
		}
		return models.PaymentInitiated // challenge: still being verified
	case "settlement":
		return models.PaymentPaid
	case "deny", "cancel", "expire", "failure":
		return models.PaymentFailed
	default:
		return models.PaymentInitiated
	}
}

// DarajaCallback is the body M-Pesa posts to the STK callback URL.
type DarajaCallback struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

func (c DarajaCallback) CheckoutRequestID() string {
	return c.Body.StkCallback.CheckoutRequestID
}

// Status is paid for ResultCode 0, failed for anything else (cancelled by
// the user, insufficient funds, timeout).
func (c DarajaCallback) Status() string {
	if c.Body.StkCallback.ResultCode == 0 {
		return models.PaymentPaid
	}
	return models.PaymentFailed
}
