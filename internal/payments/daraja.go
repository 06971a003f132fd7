package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"afyajirani-backend/internal/apperr"

	"go.uber.org/zap"
)

const darajaTimestamp = "20060102150405"

type DarajaConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	CallbackURL    string
}

// Daraja calls the Safaricom M-Pesa API directly: an OAuth token first, then
// the Lipa Na M-Pesa Online (STK push) request.
type Daraja struct {
	cfg    DarajaConfig
	http   *http.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewDaraja(cfg DarajaConfig, timeout time.Duration, logger *zap.Logger) *Daraja {
	return &Daraja{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger.Named("mpesa"),
		now:    time.Now,
	}
}

func (d *Daraja) Name() string { return ProviderMpesa }

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

func (d *Daraja) Charge(ctx context.Context, charge Charge) (*Result, error) {
	// 1. OAuth token
	token, err := d.accessToken(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.PaymentUnavailable, "Failed to get M-Pesa access token", err)
	}

	// 2. STK push
	timestamp := d.now().Format(darajaTimestamp)
	body := stkPushRequest{
		BusinessShortCode: d.cfg.Shortcode,
		Password:          base64.StdEncoding.EncodeToString([]byte(d.cfg.Shortcode + d.cfg.Passkey + timestamp)),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            charge.Amount,
		PartyA:            charge.Phone,
		PartyB:            d.cfg.Shortcode,
		PhoneNumber:       charge.Phone,
		CallBackURL:       d.cfg.CallbackURL,
		AccountReference:  "AfyaJiraniOnboarding",
		TransactionDesc:   "Hospital Onboarding Fee",
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.BaseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.PaymentUnavailable, "M-Pesa is unreachable", err)
	}
	defer resp.Body.Close()

	// Daraja answers rejected requests with 4xx and an errorMessage body, so
	// the body is decoded whatever the status.
	var out stkPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.PaymentUnavailable, "M-Pesa sent an unexpected response",
			fmt.Errorf("status %d: %w", resp.StatusCode, err))
	}

	result := &Result{
		Provider:        ProviderMpesa,
		Reference:       charge.Reference,
		ProviderRef:     out.CheckoutRequestID,
		ResponseCode:    out.ResponseCode,
		CustomerMessage: out.CustomerMessage,
	}
	if result.ResponseCode == "" {
		result.ResponseCode = out.ErrorCode
		result.CustomerMessage = out.ErrorMessage
	}
	if result.ResponseCode == "" {
		return nil, apperr.Wrap(apperr.PaymentUnavailable, "M-Pesa sent an unexpected response",
			fmt.Errorf("status %d without ResponseCode", resp.StatusCode))
	}

	d.logger.Info("stk push sent",
		zap.String("reference", charge.Reference),
		zap.String("checkout_request_id", out.CheckoutRequestID),
		zap.String("response_code", result.ResponseCode),
	)
	return result, nil
}

func (d *Daraja) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(d.cfg.ConsumerKey, d.cfg.ConsumerSecret)

	resp, err := d.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oauth status %d", resp.StatusCode)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode oauth response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("oauth response has no access_token")
	}
	return out.AccessToken, nil
}
