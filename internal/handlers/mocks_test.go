package handlers

import (
	"context"
	"errors"
	"sync/atomic"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/analytics"
	"afyajirani-backend/internal/dashboard"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/payments"
	"afyajirani-backend/internal/services"
	"afyajirani-backend/internal/session"
	"afyajirani-backend/internal/store"
)

var (
	_ AccountService     = (*MockAccounts)(nil)
	_ OnboardingService  = (*MockOnboarding)(nil)
	_ ReportService      = (*MockReports)(nil)
	_ AlertService       = (*MockAlerts)(nil)
	_ PaymentService     = (*MockPayments)(nil)
	_ DashboardComposer  = (*MockDashboards)(nil)
	_ dashboard.Insights = (*MockInsights)(nil)
	_ store.ContentStore = (*MockContent)(nil)
	_ store.AuditStore   = (*MockAudit)(nil)
)

var errNotMocked = errors.New("not implemented in mock")

type MockAccounts struct {
	SignupFunc  func(ctx context.Context, in models.RegisterInput) (*models.User, error)
	LoginFunc   func(ctx context.Context, in models.LoginInput) (*services.LoginResult, error)
	LogoutFunc  func(ctx context.Context, claims *session.Claims) error
	ProfileFunc func(ctx context.Context, userID uint64) (*models.User, error)

	SignupCallCount int32
}

func (m *MockAccounts) Signup(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	atomic.AddInt32(&m.SignupCallCount, 1)
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return nil, errNotMocked
}

func (m *MockAccounts) Login(ctx context.Context, in models.LoginInput) (*services.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, in)
	}
	return nil, errNotMocked
}

func (m *MockAccounts) Logout(ctx context.Context, claims *session.Claims) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, claims)
	}
	return errNotMocked
}

func (m *MockAccounts) Profile(ctx context.Context, userID uint64) (*models.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, errNotMocked
}

type MockOnboarding struct {
	ApplyFunc            func(ctx context.Context, in models.HospitalApplicationInput) (*services.ApplyResult, error)
	ListApplicationsFunc func(ctx context.Context, status string) ([]models.HospitalApplication, error)
	ListHospitalsFunc    func(ctx context.Context) ([]models.Hospital, error)
	ApproveFunc          func(ctx context.Context, id uint64, admin access.Actor) (*models.Hospital, error)
	RejectFunc           func(ctx context.Context, id uint64, admin access.Actor) (*models.HospitalApplication, error)

	ApproveCallCount int32
}

func (m *MockOnboarding) Apply(ctx context.Context, in models.HospitalApplicationInput) (*services.ApplyResult, error) {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, in)
	}
	return nil, errNotMocked
}

func (m *MockOnboarding) ListApplications(ctx context.Context, status string) ([]models.HospitalApplication, error) {
	if m.ListApplicationsFunc != nil {
		return m.ListApplicationsFunc(ctx, status)
	}
	return nil, errNotMocked
}

func (m *MockOnboarding) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	if m.ListHospitalsFunc != nil {
		return m.ListHospitalsFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockOnboarding) Approve(ctx context.Context, id uint64, admin access.Actor) (*models.Hospital, error) {
	atomic.AddInt32(&m.ApproveCallCount, 1)
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, id, admin)
	}
	return nil, errNotMocked
}

func (m *MockOnboarding) Reject(ctx context.Context, id uint64, admin access.Actor) (*models.HospitalApplication, error) {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, id, admin)
	}
	return nil, errNotMocked
}

type MockReports struct {
	SubmitFunc    func(ctx context.Context, in models.CreateCaseInput, actor access.Actor) (*services.SubmitResult, error)
	OutbreaksFunc func(ctx context.Context, search string, limit int) ([]models.Case, error)
}

func (m *MockReports) Submit(ctx context.Context, in models.CreateCaseInput, actor access.Actor) (*services.SubmitResult, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, in, actor)
	}
	return nil, errNotMocked
}

func (m *MockReports) Outbreaks(ctx context.Context, search string, limit int) ([]models.Case, error) {
	if m.OutbreaksFunc != nil {
		return m.OutbreaksFunc(ctx, search, limit)
	}
	return nil, errNotMocked
}

type MockAlerts struct {
	PatientsFunc func(ctx context.Context, actor access.Actor) ([]models.Patient, error)
	SendFunc     func(ctx context.Context, in models.AlertInput, actor access.Actor) (*services.AlertResult, error)
}

func (m *MockAlerts) Patients(ctx context.Context, actor access.Actor) ([]models.Patient, error) {
	if m.PatientsFunc != nil {
		return m.PatientsFunc(ctx, actor)
	}
	return nil, errNotMocked
}

func (m *MockAlerts) Send(ctx context.Context, in models.AlertInput, actor access.Actor) (*services.AlertResult, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, in, actor)
	}
	return nil, errNotMocked
}

type MockPayments struct {
	STKPushFunc             func(ctx context.Context, in models.STKPushInput) (*payments.Result, error)
	SettleFunc              func(ctx context.Context, reference, status string) error
	SettleByProviderRefFunc func(ctx context.Context, providerRef, status string) error
}

func (m *MockPayments) STKPush(ctx context.Context, in models.STKPushInput) (*payments.Result, error) {
	if m.STKPushFunc != nil {
		return m.STKPushFunc(ctx, in)
	}
	return nil, errNotMocked
}

func (m *MockPayments) Settle(ctx context.Context, reference, status string) error {
	if m.SettleFunc != nil {
		return m.SettleFunc(ctx, reference, status)
	}
	return errNotMocked
}

func (m *MockPayments) SettleByProviderRef(ctx context.Context, providerRef, status string) error {
	if m.SettleByProviderRefFunc != nil {
		return m.SettleByProviderRefFunc(ctx, providerRef, status)
	}
	return errNotMocked
}

type MockDashboards struct {
	ComposeFunc func(ctx context.Context, v dashboard.Variant, actor access.Actor, p dashboard.Params) (*dashboard.Dashboard, error)
}

func (m *MockDashboards) Compose(ctx context.Context, v dashboard.Variant, actor access.Actor, p dashboard.Params) (*dashboard.Dashboard, error) {
	if m.ComposeFunc != nil {
		return m.ComposeFunc(ctx, v, actor, p)
	}
	return nil, errNotMocked
}

type MockInsights struct {
	PredictFunc          func(ctx context.Context, disease string, rangeDays int) (*analytics.Prediction, error)
	RiskFunc             func(ctx context.Context, location string, days int) (*analytics.RiskReport, error)
	HotspotsFunc         func(ctx context.Context, days, minCases int) ([]analytics.Hotspot, error)
	PersonalizedTipsFunc func(ctx context.Context, location string) ([]string, error)
}

func (m *MockInsights) Predict(ctx context.Context, disease string, rangeDays int) (*analytics.Prediction, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, disease, rangeDays)
	}
	return nil, errNotMocked
}

func (m *MockInsights) Risk(ctx context.Context, location string, days int) (*analytics.RiskReport, error) {
	if m.RiskFunc != nil {
		return m.RiskFunc(ctx, location, days)
	}
	return nil, errNotMocked
}

func (m *MockInsights) Hotspots(ctx context.Context, days, minCases int) ([]analytics.Hotspot, error) {
	if m.HotspotsFunc != nil {
		return m.HotspotsFunc(ctx, days, minCases)
	}
	return nil, errNotMocked
}

func (m *MockInsights) PersonalizedTips(ctx context.Context, location string) ([]string, error) {
	if m.PersonalizedTipsFunc != nil {
		return m.PersonalizedTipsFunc(ctx, location)
	}
	return nil, errNotMocked
}

type MockContent struct {
	ListClinicsFunc func(ctx context.Context, search string) ([]models.Clinic, error)
	CreateTipFunc   func(ctx context.Context, t *models.Tip) error
}

func (m *MockContent) ListTips(context.Context) ([]models.Tip, error) { return []models.Tip{}, nil }

func (m *MockContent) ListClinics(ctx context.Context, search string) ([]models.Clinic, error) {
	if m.ListClinicsFunc != nil {
		return m.ListClinicsFunc(ctx, search)
	}
	return []models.Clinic{}, nil
}

func (m *MockContent) ListHelplines(context.Context) ([]models.Helpline, error) {
	return []models.Helpline{}, nil
}

func (m *MockContent) ListFAQ(context.Context) ([]models.FAQ, error) { return []models.FAQ{}, nil }

func (m *MockContent) CreateTip(ctx context.Context, t *models.Tip) error {
	if m.CreateTipFunc != nil {
		return m.CreateTipFunc(ctx, t)
	}
	return nil
}

func (m *MockContent) CreateClinic(context.Context, *models.Clinic) error     { return nil }
func (m *MockContent) CreateHelpline(context.Context, *models.Helpline) error { return nil }
func (m *MockContent) CreateFAQ(context.Context, *models.FAQ) error           { return nil }

type MockAudit struct {
	RecordFunc func(ctx context.Context, action, actor, details string) error
	RecentFunc func(ctx context.Context, limit int) ([]models.AuditLog, error)

	RecordCallCount int32
}

func (m *MockAudit) Record(ctx context.Context, action, actor, details string) error {
	atomic.AddInt32(&m.RecordCallCount, 1)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, action, actor, details)
	}
	return nil
}

func (m *MockAudit) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	return nil, errNotMocked
}
