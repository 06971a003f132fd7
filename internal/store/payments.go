package store

import (
	"context"

	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
)

type paymentStore struct {
	db *gorm.DB
}

func (s *paymentStore) Create(ctx context.Context, p *models.Payment) error {
	return create(ctx, s.db, p, "Failed to record payment")
}

func (s *paymentStore) FindByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var p models.Payment
	if err := s.db.WithContext(ctx).Where("reference = ?", reference).First(&p).Error; err != nil {
		return nil, wrap("Payment", err)
	}
	return &p, nil
}

func (s *paymentStore) FindByProviderRef(ctx context.Context, providerRef string) (*models.Payment, error) {
	var p models.Payment
	if err := s.db.WithContext(ctx).Where("provider_ref = ?", providerRef).First(&p).Error; err != nil {
		return nil, wrap("Payment", err)
	}
	return &p, nil
}

func (s *paymentStore) UpdateStatus(ctx context.Context, reference, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("reference = ?", reference).
		Update("status", status)
	if res.Error != nil {
		return wrap("Failed to update payment", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("Payment", gorm.ErrRecordNotFound)
	}
	return nil
}
