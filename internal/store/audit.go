package store

import (
	"context"

	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
)

type auditStore struct {
	db *gorm.DB
}

func (s *auditStore) Record(ctx context.Context, action, actor, details string) error {
	entry := models.AuditLog{Action: action, Actor: actor, Details: details}
	return create(ctx, s.db, &entry, "Failed to write audit log")
}

func (s *auditStore) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.AuditLog
	if err := s.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, wrap("Failed to load audit log", err)
	}
	return entries, nil
}
