package store

import (
	"context"

	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
)

type patientStore struct {
	db *gorm.DB
}

func (s *patientStore) List(ctx context.Context, hospitalID *uint64) ([]models.Patient, error) {
	var patients []models.Patient
	q := s.db.WithContext(ctx).Order("name asc")
	if hospitalID != nil {
		q = q.Where("hospital_id = ?", *hospitalID)
	}
	if err := q.Find(&patients).Error; err != nil {
		return nil, wrap("Failed to load patients", err)
	}
	return patients, nil
}

func (s *patientStore) FindByIDs(ctx context.Context, hospitalID *uint64, ids []uint64) ([]models.Patient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var patients []models.Patient
	q := s.db.WithContext(ctx).Where("id IN ?", ids)
	if hospitalID != nil {
		q = q.Where("hospital_id = ?", *hospitalID)
	}
	if err := q.Find(&patients).Error; err != nil {
		return nil, wrap("Failed to load patients", err)
	}
	return patients, nil
}
