// Package store is the row-store side of the data fetch layer. Every method
// surfaces failures as apperr kinds: missing rows are NotFound, anything else
// from the driver is DataUnavailable. Nothing here retries.
package store

import (
	"context"
	"errors"

	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrInviteCodeTaken means another hospital already holds the code.
	// Callers generate a new code and try again.
	ErrInviteCodeTaken = errors.New("store: invite code already in use")
	// ErrNotPending means the application was already approved or rejected.
	ErrNotPending = apperr.Validation("Application is no longer pending")
	// ErrEmailTaken is returned by UserStore.Create for a duplicate email.
	ErrEmailTaken = apperr.Validation("Email is already registered")
)

type CaseStore interface {
	Create(ctx context.Context, c *models.Case) error
	List(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	CountByDisease(ctx context.Context) (map[string]int64, error)
}

type HospitalStore interface {
	CreateApplication(ctx context.Context, app *models.HospitalApplication) error
	ListApplications(ctx context.Context, status string) ([]models.HospitalApplication, error)
	GetApplication(ctx context.Context, id uint64) (*models.HospitalApplication, error)
	// ApproveApplication creates the hospital and marks the application
	// approved in one transaction.
	ApproveApplication(ctx context.Context, id uint64, inviteCode string) (*models.Hospital, error)
	RejectApplication(ctx context.Context, id uint64) (*models.HospitalApplication, error)
	FindHospitalByInviteCode(ctx context.Context, code string) (*models.Hospital, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	UpdatePaymentStatus(ctx context.Context, reference, status string) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
}

type PatientStore interface {
	// List returns patients of a hospital; nil lists every patient.
	List(ctx context.Context, hospitalID *uint64) ([]models.Patient, error)
	FindByIDs(ctx context.Context, hospitalID *uint64, ids []uint64) ([]models.Patient, error)
}

type ContentStore interface {
	ListTips(ctx context.Context) ([]models.Tip, error)
	ListClinics(ctx context.Context, search string) ([]models.Clinic, error)
	ListHelplines(ctx context.Context) ([]models.Helpline, error)
	ListFAQ(ctx context.Context) ([]models.FAQ, error)
	CreateTip(ctx context.Context, t *models.Tip) error
	CreateClinic(ctx context.Context, c *models.Clinic) error
	CreateHelpline(ctx context.Context, h *models.Helpline) error
	CreateFAQ(ctx context.Context, f *models.FAQ) error
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	FindByReference(ctx context.Context, reference string) (*models.Payment, error)
	FindByProviderRef(ctx context.Context, providerRef string) (*models.Payment, error)
	UpdateStatus(ctx context.Context, reference, status string) error
}

type AuditStore interface {
	Record(ctx context.Context, action, actor, details string) error
	Recent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

// Stores bundles every gorm-backed store over one connection.
type Stores struct {
	Cases     CaseStore
	Hospitals HospitalStore
	Users     UserStore
	Patients  PatientStore
	Content   ContentStore
	Payments  PaymentStore
	Audit     AuditStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Cases:     &caseStore{db: db},
		Hospitals: &hospitalStore{db: db},
		Users:     &userStore{db: db},
		Patients:  &patientStore{db: db},
		Content:   &contentStore{db: db},
		Payments:  &paymentStore{db: db},
		Audit:     &auditStore{db: db},
	}
}

// wrap converts a gorm error into the matching apperr kind.
func wrap(message string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.NotFound, message+": not found", err)
	}
	return apperr.Data(message, err)
}

// newest lists every row of T, most recent first.
func newest[T any](ctx context.Context, db *gorm.DB, message string) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, wrap(message, err)
	}
	return rows, nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T, message string) error {
	return wrap(message, db.WithContext(ctx).Create(row).Error)
}
