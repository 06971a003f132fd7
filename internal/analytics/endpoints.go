package analytics

import (
	"context"
	"net/url"
	"strconv"
)

// Inline messages shown when a panel or form fails on the analytics side.
const (
	MsgPrediction = "Prediction API error"
	MsgRisk       = "Risk API error"
	MsgHotspots   = "Hotspots API error"
	MsgTips       = "Personalized Tips API error"
	MsgReportCase = "Submission failed."
	MsgSendAlert  = "Failed to send alert"
	MsgSTKPush    = "Payment request failed"
)

// Predict returns daily predictions for the next rangeDays days.
func (c *Client) Predict(ctx context.Context, disease string, rangeDays int) (*Prediction, error) {
	q := url.Values{}
	q.Set("disease", disease)
	q.Set("predict_range", strconv.Itoa(rangeDays))
	q.Set("range", strconv.Itoa(rangeDays))

	var out Prediction
	if err := c.get(ctx, "/predict", q, MsgPrediction, &out); err != nil {
		return nil, err
	}
	if out.Disease == "" {
		out.Disease = disease
	}
	return &out, nil
}

// Risk returns per-disease risk for a location over the last days days.
func (c *Client) Risk(ctx context.Context, location string, days int) (*RiskReport, error) {
	q := url.Values{}
	if location != "" {
		q.Set("location", location)
	}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	var out RiskReport
	if err := c.get(ctx, "/risk", q, MsgRisk, &out); err != nil {
		return nil, err
	}
	if out.Location == "" {
		out.Location = location
	}
	return &out, nil
}

func (c *Client) Hotspots(ctx context.Context, days, minCases int) ([]Hotspot, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	q.Set("min_cases", strconv.Itoa(minCases))

	var out hotspotsResponse
	if err := c.get(ctx, "/hotspots", q, MsgHotspots, &out); err != nil {
		return nil, err
	}
	return out.Hotspots, nil
}

func (c *Client) PersonalizedTips(ctx context.Context, location string) ([]string, error) {
	q := url.Values{}
	if location != "" {
		q.Set("location", location)
	}

	var out tipsResponse
	if err := c.get(ctx, "/personalized-tips", q, MsgTips, &out); err != nil {
		return nil, err
	}
	return out.Tips, nil
}

func (c *Client) ReportCase(ctx context.Context, report CaseReport) error {
	return c.post(ctx, "/report-case", report, MsgReportCase, &anyBody{})
}

func (c *Client) SendAlert(ctx context.Context, alert Alert) error {
	return c.post(ctx, "/send-alert", alert, MsgSendAlert, &anyBody{})
}

// STKPush asks the service to prompt phone for amount via M-Pesa.
func (c *Client) STKPush(ctx context.Context, phone string, amount int64) (*STKPushResult, error) {
	body := map[string]interface{}{"phone": phone, "amount": amount}
	var out STKPushResult
	if err := c.post(ctx, "/mpesa/stkpush", body, MsgSTKPush, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
