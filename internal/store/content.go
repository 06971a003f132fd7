package store

import (
	"context"
	"strings"

	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
)

type contentStore struct {
	db *gorm.DB
}

func (s *contentStore) ListTips(ctx context.Context) ([]models.Tip, error) {
	return newest[models.Tip](ctx, s.db, "Failed to load tips")
}

func (s *contentStore) ListClinics(ctx context.Context, search string) ([]models.Clinic, error) {
	var clinics []models.Clinic
	q := s.db.WithContext(ctx).Order("created_at desc")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(address) LIKE ?", like, like, like)
	}
	if err := q.Find(&clinics).Error; err != nil {
		return nil, wrap("Failed to load clinics", err)
	}
	return clinics, nil
}

func (s *contentStore) ListHelplines(ctx context.Context) ([]models.Helpline, error) {
	return newest[models.Helpline](ctx, s.db, "Failed to load helplines")
}

func (s *contentStore) ListFAQ(ctx context.Context) ([]models.FAQ, error) {
	return newest[models.FAQ](ctx, s.db, "Failed to load FAQ")
}

func (s *contentStore) CreateTip(ctx context.Context, t *models.Tip) error {
	return create(ctx, s.db, t, "Failed to save tip")
}

func (s *contentStore) CreateClinic(ctx context.Context, c *models.Clinic) error {
	return create(ctx, s.db, c, "Failed to save clinic")
}

func (s *contentStore) CreateHelpline(ctx context.Context, h *models.Helpline) error {
	return create(ctx, s.db, h, "Failed to save helpline")
}

func (s *contentStore) CreateFAQ(ctx context.Context, f *models.FAQ) error {
	return create(ctx, s.db, f, "Failed to save FAQ")
}
