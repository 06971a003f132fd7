package analytics

import "fmt"

type missingField string

func (f missingField) Error() string { return fmt.Sprintf("response has no %q field", string(f)) }

type PredictionPoint struct {
	DaysFromNow    int     `json:"days_from_now"`
	PredictedCases float64 `json:"predicted_cases"`
}

type Prediction struct {
	Disease          string            `json:"disease"`
	Predictions      []PredictionPoint `json:"predictions"`
	TrendExplanation string            `json:"trend_explanation,omitempty"`
}

// Total is the sum of predicted cases over the whole range.
func (p *Prediction) Total() float64 {
	var sum float64
	for _, pt := range p.Predictions {
		sum += pt.PredictedCases
	}
	return sum
}

func (p *Prediction) valid() error {
	if p.Predictions == nil {
		return missingField("predictions")
	}
	return nil
}

type Risk struct {
	Risk          string  `json:"risk"`
	RecentCases   float64 `json:"recent_cases"`
	AvgDailyCases float64 `json:"avg_daily_cases"`
}

type RiskReport struct {
	Location   string          `json:"location,omitempty"`
	RiskScores map[string]Risk `json:"risk_scores"`
}

func (r *RiskReport) valid() error {
	if r.RiskScores == nil {
		return missingField("risk_scores")
	}
	return nil
}

type Hotspot struct {
	Disease  string `json:"disease"`
	Location string `json:"location"`
	Cases    int    `json:"cases"`
	Risk     string `json:"risk"`
}

type hotspotsResponse struct {
	Hotspots []Hotspot `json:"hotspots"`
}

func (h *hotspotsResponse) valid() error {
	if h.Hotspots == nil {
		return missingField("hotspots")
	}
	return nil
}

type tipsResponse struct {
	Tips []string `json:"tips"`
}

func (t *tipsResponse) valid() error {
	if t.Tips == nil {
		return missingField("tips")
	}
	return nil
}

// CaseReport is the body POSTed to /report-case.
type CaseReport struct {
	Disease     string  `json:"disease"`
	Symptoms    string  `json:"symptoms"`
	Location    string  `json:"location"`
	AgeGroup    string  `json:"age_group"`
	Gender      string  `json:"gender"`
	Date        string  `json:"date"`
	PatientCode *string `json:"patient_code"`
	DoctorName  string  `json:"doctor_name"`
	ClinicName  string  `json:"clinic_name"`
}

// Alert is the body POSTed to /send-alert.
type Alert struct {
	PatientIDs []uint64 `json:"patient_ids"`
	Message    string   `json:"message"`
	Channel    string   `json:"channel"`
}

// STKPushResult mirrors the M-Pesa answer relayed by the service.
// ResponseCode "0" means the prompt was sent to the phone.
type STKPushResult struct {
	ResponseCode      string `json:"ResponseCode"`
	CustomerMessage   string `json:"CustomerMessage"`
	CheckoutRequestID string `json:"CheckoutRequestID,omitempty"`
}

func (s *STKPushResult) valid() error {
	if s.ResponseCode == "" {
		return missingField("ResponseCode")
	}
	return nil
}

// anyBody accepts whatever JSON the service answers with.
type anyBody map[string]interface{}

func (anyBody) valid() error { return nil }
