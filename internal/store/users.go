package store

import (
	"context"
	"errors"

	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(ctx context.Context, u *models.User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return wrap("Failed to create account", err)
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, wrap("User", err)
	}
	return &u, nil
}

func (s *userStore) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Preload("Hospital").First(&u, id).Error; err != nil {
		return nil, wrap("User", err)
	}
	return &u, nil
}

func (s *userStore) CountByRole(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Role  string
		Total int64
	}
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("role, count(*) as total").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("Failed to count users", err)
	}

	counts := map[string]int64{
		models.RoleCommunity: 0,
		models.RoleDoctor:    0,
		models.RoleAdmin:     0,
	}
	for _, r := range rows {
		counts[r.Role] = r.Total
	}
	return counts, nil
}
