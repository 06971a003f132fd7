// Package handlers binds HTTP requests to the services. Every response uses
// the {success, message, data} envelope from pkg/utils.
package handlers

import (
	"context"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/dashboard"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/payments"
	"afyajirani-backend/internal/services"
	"afyajirani-backend/internal/session"
	"afyajirani-backend/internal/store"

	"go.uber.org/zap"
)

type AccountService interface {
	Signup(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in models.LoginInput) (*services.LoginResult, error)
	Logout(ctx context.Context, claims *session.Claims) error
	Profile(ctx context.Context, userID uint64) (*models.User, error)
}

type OnboardingService interface {
	Apply(ctx context.Context, in models.HospitalApplicationInput) (*services.ApplyResult, error)
	ListApplications(ctx context.Context, status string) ([]models.HospitalApplication, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	Approve(ctx context.Context, id uint64, admin access.Actor) (*models.Hospital, error)
	Reject(ctx context.Context, id uint64, admin access.Actor) (*models.HospitalApplication, error)
}

type ReportService interface {
	Submit(ctx context.Context, in models.CreateCaseInput, actor access.Actor) (*services.SubmitResult, error)
	Outbreaks(ctx context.Context, search string, limit int) ([]models.Case, error)
}

type AlertService interface {
	Patients(ctx context.Context, actor access.Actor) ([]models.Patient, error)
	Send(ctx context.Context, in models.AlertInput, actor access.Actor) (*services.AlertResult, error)
}

type PaymentService interface {
	STKPush(ctx context.Context, in models.STKPushInput) (*payments.Result, error)
	Settle(ctx context.Context, reference, status string) error
	SettleByProviderRef(ctx context.Context, providerRef, status string) error
}

type DashboardComposer interface {
	Compose(ctx context.Context, v dashboard.Variant, actor access.Actor, p dashboard.Params) (*dashboard.Dashboard, error)
}

// Handler holds everything the endpoints call into.
type Handler struct {
	Accounts   AccountService
	Onboarding OnboardingService
	Reports    ReportService
	Alerts     AlertService
	Payments   PaymentService
	Dashboards DashboardComposer
	Insights   dashboard.Insights
	Content    store.ContentStore
	Audit      store.AuditStore
	Logger     *zap.Logger

	// MidtransServerKey signs inbound Midtrans notifications.
	MidtransServerKey string
}
