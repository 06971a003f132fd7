package store

import (
	"context"
	"errors"

	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type hospitalStore struct {
	db *gorm.DB
}

func (s *hospitalStore) CreateApplication(ctx context.Context, app *models.HospitalApplication) error {
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}
	if app.PaymentStatus == "" {
		app.PaymentStatus = models.PaymentNone
	}
	return create(ctx, s.db, app, "Failed to submit application")
}

func (s *hospitalStore) ListApplications(ctx context.Context, status string) ([]models.HospitalApplication, error) {
	var apps []models.HospitalApplication
	q := s.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&apps).Error; err != nil {
		return nil, wrap("Failed to load applications", err)
	}
	return apps, nil
}

func (s *hospitalStore) GetApplication(ctx context.Context, id uint64) (*models.HospitalApplication, error) {
	var app models.HospitalApplication
	if err := s.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, wrap("Application", err)
	}
	return &app, nil
}

func (s *hospitalStore) ApproveApplication(ctx context.Context, id uint64, inviteCode string) (*models.Hospital, error) {
	var hospital models.Hospital

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the application so two admins cannot approve it twice
		var app models.HospitalApplication
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, id).Error; err != nil {
			return err
		}
		if app.Status != models.ApplicationPending {
			return ErrNotPending
		}

		// 2. Invite code must be unused
		var taken int64
		if err := tx.Model(&models.Hospital{}).Where("invite_code = ?", inviteCode).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrInviteCodeTaken
		}

		// 3. Create the hospital
		hospital = models.Hospital{
			ApplicationID:      app.ID,
			Name:               app.Name,
			RegistrationNumber: app.RegistrationNumber,
			Address:            app.Address,
			ContactEmail:       app.ContactEmail,
			Status:             models.ApplicationApproved,
			InviteCode:         inviteCode,
		}
		if err := tx.Create(&hospital).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// lost a race on invite_code (application_id is covered by the lock)
				return ErrInviteCodeTaken
			}
			return err
		}

		// 4. Close the application
		return tx.Model(&app).Update("status", models.ApplicationApproved).Error
	})

	if errors.Is(err, ErrInviteCodeTaken) {
		return nil, ErrInviteCodeTaken
	}
	if err != nil {
		return nil, wrap("Failed to approve application", err)
	}
	return &hospital, nil
}

func (s *hospitalStore) RejectApplication(ctx context.Context, id uint64) (*models.HospitalApplication, error) {
	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.HospitalApplication{}).
		Where("id = ? AND status = ?", id, models.ApplicationPending).
		Update("status", models.ApplicationRejected)
	if res.Error != nil {
		return nil, wrap("Failed to reject application", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotPending
	}

	app.Status = models.ApplicationRejected
	return app, nil
}

func (s *hospitalStore) FindHospitalByInviteCode(ctx context.Context, code string) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := s.db.WithContext(ctx).Where("invite_code = ?", code).First(&hospital).Error; err != nil {
		return nil, wrap("Hospital", err)
	}
	return &hospital, nil
}

func (s *hospitalStore) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	return newest[models.Hospital](ctx, s.db, "Failed to load hospitals")
}

func (s *hospitalStore) UpdatePaymentStatus(ctx context.Context, reference, status string) error {
	err := s.db.WithContext(ctx).Model(&models.HospitalApplication{}).
		Where("payment_reference = ?", reference).
		Update("payment_status", status).Error
	return wrap("Failed to update application payment", err)
}
