package services

import (
	"context"
	"errors"
	"sync/atomic"

	"afyajirani-backend/internal/analytics"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/notify"
	"afyajirani-backend/internal/payments"
	"afyajirani-backend/internal/store"
)

var (
	_ store.HospitalStore = (*MockHospitalStore)(nil)
	_ store.UserStore     = (*MockUserStore)(nil)
	_ store.PaymentStore  = (*MockPaymentStore)(nil)
	_ store.AuditStore    = (*MockAuditStore)(nil)
	_ store.CaseStore     = (*MockCaseStore)(nil)
	_ store.PatientStore  = (*MockPatientStore)(nil)
	_ payments.Provider   = (*MockProvider)(nil)
	_ notify.Pusher       = (*MockPusher)(nil)
	_ CaseForwarder       = (*MockAnalytics)(nil)
	_ AlertSender         = (*MockAnalytics)(nil)
)

var errNotMocked = errors.New("not implemented in mock")

type MockHospitalStore struct {
	CreateApplicationFunc        func(ctx context.Context, app *models.HospitalApplication) error
	ListApplicationsFunc         func(ctx context.Context, status string) ([]models.HospitalApplication, error)
	GetApplicationFunc           func(ctx context.Context, id uint64) (*models.HospitalApplication, error)
	ApproveApplicationFunc       func(ctx context.Context, id uint64, inviteCode string) (*models.Hospital, error)
	RejectApplicationFunc        func(ctx context.Context, id uint64) (*models.HospitalApplication, error)
	FindHospitalByInviteCodeFunc func(ctx context.Context, code string) (*models.Hospital, error)
	ListHospitalsFunc            func(ctx context.Context) ([]models.Hospital, error)
	UpdatePaymentStatusFunc      func(ctx context.Context, reference, status string) error

	CreateApplicationCallCount  int32
	ApproveApplicationCallCount int32
}

func (m *MockHospitalStore) CreateApplication(ctx context.Context, app *models.HospitalApplication) error {
	atomic.AddInt32(&m.CreateApplicationCallCount, 1)
	if m.CreateApplicationFunc != nil {
		return m.CreateApplicationFunc(ctx, app)
	}
	return nil
}

func (m *MockHospitalStore) ListApplications(ctx context.Context, status string) ([]models.HospitalApplication, error) {
	if m.ListApplicationsFunc != nil {
		return m.ListApplicationsFunc(ctx, status)
	}
	return nil, errNotMocked
}

func (m *MockHospitalStore) GetApplication(ctx context.Context, id uint64) (*models.HospitalApplication, error) {
	if m.GetApplicationFunc != nil {
		return m.GetApplicationFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockHospitalStore) ApproveApplication(ctx context.Context, id uint64, inviteCode string) (*models.Hospital, error) {
	atomic.AddInt32(&m.ApproveApplicationCallCount, 1)
	if m.ApproveApplicationFunc != nil {
		return m.ApproveApplicationFunc(ctx, id, inviteCode)
	}
	return nil, errNotMocked
}

func (m *MockHospitalStore) RejectApplication(ctx context.Context, id uint64) (*models.HospitalApplication, error) {
	if m.RejectApplicationFunc != nil {
		return m.RejectApplicationFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockHospitalStore) FindHospitalByInviteCode(ctx context.Context, code string) (*models.Hospital, error) {
	if m.FindHospitalByInviteCodeFunc != nil {
		return m.FindHospitalByInviteCodeFunc(ctx, code)
	}
	return nil, errNotMocked
}

func (m *MockHospitalStore) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	if m.ListHospitalsFunc != nil {
		return m.ListHospitalsFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockHospitalStore) UpdatePaymentStatus(ctx context.Context, reference, status string) error {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, reference, status)
	}
	return nil
}

type MockUserStore struct {
	CreateFunc      func(ctx context.Context, u *models.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	FindByIDFunc    func(ctx context.Context, id uint64) (*models.User, error)
	CountByRoleFunc func(ctx context.Context) (map[string]int64, error)

	CreateCallCount int32
}

func (m *MockUserStore) Create(ctx context.Context, u *models.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errNotMocked
}

func (m *MockUserStore) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockUserStore) CountByRole(ctx context.Context) (map[string]int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx)
	}
	return nil, errNotMocked
}

type MockPaymentStore struct {
	CreateFunc            func(ctx context.Context, p *models.Payment) error
	FindByReferenceFunc   func(ctx context.Context, reference string) (*models.Payment, error)
	FindByProviderRefFunc func(ctx context.Context, providerRef string) (*models.Payment, error)
	UpdateStatusFunc      func(ctx context.Context, reference, status string) error

	CreateCallCount int32
}

func (m *MockPaymentStore) Create(ctx context.Context, p *models.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockPaymentStore) FindByReference(ctx context.Context, reference string) (*models.Payment, error) {
	if m.FindByReferenceFunc != nil {
		return m.FindByReferenceFunc(ctx, reference)
	}
	return nil, errNotMocked
}

func (m *MockPaymentStore) FindByProviderRef(ctx context.Context, providerRef string) (*models.Payment, error) {
	if m.FindByProviderRefFunc != nil {
		return m.FindByProviderRefFunc(ctx, providerRef)
	}
	return nil, errNotMocked
}

func (m *MockPaymentStore) UpdateStatus(ctx context.Context, reference, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, reference, status)
	}
	return nil
}

type MockAuditStore struct {
	Actions []string
}

func (m *MockAuditStore) Record(_ context.Context, action, _, _ string) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditStore) Recent(_ context.Context, _ int) ([]models.AuditLog, error) {
	return nil, nil
}

type MockCaseStore struct {
	CreateFunc         func(ctx context.Context, c *models.Case) error
	ListFunc           func(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	CountByDiseaseFunc func(ctx context.Context) (map[string]int64, error)

	CreateCallCount int32
}

func (m *MockCaseStore) Create(ctx context.Context, c *models.Case) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCaseStore) List(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, errNotMocked
}

func (m *MockCaseStore) CountByDisease(ctx context.Context) (map[string]int64, error) {
	if m.CountByDiseaseFunc != nil {
		return m.CountByDiseaseFunc(ctx)
	}
	return nil, errNotMocked
}

type MockPatientStore struct {
	ListFunc      func(ctx context.Context, hospitalID *uint64) ([]models.Patient, error)
	FindByIDsFunc func(ctx context.Context, hospitalID *uint64, ids []uint64) ([]models.Patient, error)
}

func (m *MockPatientStore) List(ctx context.Context, hospitalID *uint64) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, hospitalID)
	}
	return nil, errNotMocked
}

func (m *MockPatientStore) FindByIDs(ctx context.Context, hospitalID *uint64, ids []uint64) ([]models.Patient, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, hospitalID, ids)
	}
	return nil, errNotMocked
}

type MockProvider struct {
	ChargeFunc func(ctx context.Context, charge payments.Charge) (*payments.Result, error)

	ChargeCallCount int32
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Charge(ctx context.Context, charge payments.Charge) (*payments.Result, error) {
	atomic.AddInt32(&m.ChargeCallCount, 1)
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, charge)
	}
	return &payments.Result{Provider: "mock", Reference: charge.Reference, ResponseCode: payments.AcceptedCode}, nil
}

type MockPusher struct {
	Disabled bool
	Tokens   []string
	Err      error
}

func (m *MockPusher) Enabled() bool { return !m.Disabled }

func (m *MockPusher) Push(_ context.Context, tokens []string, _ notify.Message) (int, error) {
	m.Tokens = append(m.Tokens, tokens...)
	if m.Err != nil {
		return 0, m.Err
	}
	return len(tokens), nil
}

type MockAnalytics struct {
	ReportCaseErr error
	SendAlertErr  error
	Reports       []analytics.CaseReport
	Alerts        []analytics.Alert
}

func (m *MockAnalytics) ReportCase(_ context.Context, r analytics.CaseReport) error {
	m.Reports = append(m.Reports, r)
	return m.ReportCaseErr
}

func (m *MockAnalytics) SendAlert(_ context.Context, a analytics.Alert) error {
	m.Alerts = append(m.Alerts, a)
	return m.SendAlertErr
}
