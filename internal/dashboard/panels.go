package dashboard

import (
	"context"
	"math"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/aggregate"
	"afyajirani-backend/internal/analytics"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/store"
)

// Defaults used by the dashboards when the user has not picked anything.
const (
	CommunityDisease = models.DiseaseMalaria
	ClinicianDisease = models.DiseaseCholera
	DefaultLocation  = "Nairobi"
	PredictionDays   = 7
	RiskDays         = 14
	HotspotDays      = 7
	HotspotMinCases  = 3
	OutbreakLimit    = 50
	AuditLimit       = 20
)

// Insights is the analytics side of the dashboards.
type Insights interface {
	Predict(ctx context.Context, disease string, rangeDays int) (*analytics.Prediction, error)
	Risk(ctx context.Context, location string, days int) (*analytics.RiskReport, error)
	Hotspots(ctx context.Context, days, minCases int) ([]analytics.Hotspot, error)
	PersonalizedTips(ctx context.Context, location string) ([]string, error)
}

// CaseViews serves the case-derived panels.
type CaseViews interface {
	Outbreaks(ctx context.Context, search string, limit int) ([]models.Case, error)
	Trends(ctx context.Context) (aggregate.Series, error)
}

// PatientDirectory lists the patients an actor may see.
type PatientDirectory interface {
	Patients(ctx context.Context, actor access.Actor) ([]models.Patient, error)
}

// Sources is everything the panels read from.
type Sources struct {
	Insights  Insights
	Cases     CaseViews
	Patients  PatientDirectory
	Content   store.ContentStore
	Hospitals store.HospitalStore
	Users     store.UserStore
	CaseStats store.CaseStore
	Audit     store.AuditStore
}

// PredictionView is a prediction plus the rounded total over its range.
type PredictionView struct {
	*analytics.Prediction
	PredictedTotal int `json:"predicted_total"`
}

// Stats is the admin overview.
type Stats struct {
	UsersByRole    map[string]int64 `json:"users_by_role"`
	Hospitals      int              `json:"hospitals"`
	CasesByDisease map[string]int64 `json:"cases_by_disease"`
}

func (s Sources) variants() map[Variant][]panelSpec {
	return map[Variant][]panelSpec{
		Community: {
			{"outbreaks", s.outbreaks},
			{"tips", s.tips},
			{"clinics", s.clinics},
			{"helplines", s.helplines},
			{"faq", s.faq},
			{"prediction", s.prediction(CommunityDisease)},
			{"risk", s.risk},
			{"hotspots", s.hotspots},
			{"personalized_tips", s.personalizedTips},
		},
		Clinician: {
			{"trends", s.trends},
			{"prediction", s.prediction(ClinicianDisease)},
			{"risk", s.risk},
			{"hotspots", s.hotspots},
			{"personalized_tips", s.personalizedTips},
			{"patients", s.patients},
		},
		Admin: {
			{"pending_applications", s.pendingApplications},
			{"stats", s.stats},
			{"trends", s.trends},
			{"audit_log", s.auditLog},
		},
	}
}

func location(p Params) string {
	if p.Location != "" {
		return p.Location
	}
	return DefaultLocation
}

func (s Sources) outbreaks(ctx context.Context, _ access.Actor, p Params) (interface{}, error) {
	return s.Cases.Outbreaks(ctx, p.Search, OutbreakLimit)
}

func (s Sources) tips(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	return s.Content.ListTips(ctx)
}

func (s Sources) clinics(ctx context.Context, _ access.Actor, p Params) (interface{}, error) {
	return s.Content.ListClinics(ctx, p.Search)
}

func (s Sources) helplines(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	return s.Content.ListHelplines(ctx)
}

func (s Sources) faq(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	return s.Content.ListFAQ(ctx)
}

// prediction returns a fetch for p.Disease, or def when none is picked.
func (s Sources) prediction(def string) fetchFunc {
	return func(ctx context.Context, _ access.Actor, p Params) (interface{}, error) {
		disease := p.Disease
		if disease == "" {
			disease = def
		}
		pred, err := s.Insights.Predict(ctx, disease, PredictionDays)
		if err != nil {
			return nil, err
		}
		return PredictionView{Prediction: pred, PredictedTotal: int(math.Round(pred.Total()))}, nil
	}
}

func (s Sources) risk(ctx context.Context, _ access.Actor, p Params) (interface{}, error) {
	return s.Insights.Risk(ctx, location(p), RiskDays)
}

func (s Sources) hotspots(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	return s.Insights.Hotspots(ctx, HotspotDays, HotspotMinCases)
}

func (s Sources) personalizedTips(ctx context.Context, _ access.Actor, p Params) (interface{}, error) {
	return s.Insights.PersonalizedTips(ctx, location(p))
}

func (s Sources) trends(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	return s.Cases.Trends(ctx)
}

func (s Sources) patients(ctx context.Context, actor access.Actor, _ Params) (interface{}, error) {
	return s.Patients.Patients(ctx, actor)
}

func (s Sources) pendingApplications(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	return s.Hospitals.ListApplications(ctx, models.ApplicationPending)
}

func (s Sources) stats(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	users, err := s.Users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	hospitals, err := s.Hospitals.ListHospitals(ctx)
	if err != nil {
		return nil, err
	}
	cases, err := s.CaseStats.CountByDisease(ctx)
	if err != nil {
		return nil, err
	}
	return Stats{UsersByRole: users, Hospitals: len(hospitals), CasesByDisease: cases}, nil
}

func (s Sources) auditLog(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
	return s.Audit.Recent(ctx, AuditLimit)
}
