package store

import (
	"context"
	"strings"

	"afyajirani-backend/internal/models"

	"gorm.io/gorm"
)

type caseStore struct {
	db *gorm.DB
}

func (s *caseStore) Create(ctx context.Context, c *models.Case) error {
	return create(ctx, s.db, c, "Failed to save case report")
}

func (s *caseStore) List(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	var rows []models.Case
	q := filterCases(s.db.WithContext(ctx).Model(&models.Case{}), filter)
	if err := q.Order("date desc").Order("id desc").Find(&rows).Error; err != nil {
		return nil, wrap("Failed to load cases", err)
	}
	return rows, nil
}

func (s *caseStore) CountByDisease(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Disease string
		Total   int64
	}
	err := s.db.WithContext(ctx).Model(&models.Case{}).
		Select("disease, count(*) as total").
		Group("disease").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("Failed to count cases", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Disease] = r.Total
	}
	return counts, nil
}

// filterCases applies the non-zero fields of filter to q.
func filterCases(q *gorm.DB, filter models.CaseFilter) *gorm.DB {
	if filter.Disease != "" {
		q = q.Where("disease = ?", filter.Disease)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Since != "" {
		q = q.Where("date >= ?", filter.Since)
	}
	if filter.Until != "" {
		q = q.Where("date <= ?", filter.Until)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(disease) LIKE ? OR LOWER(location) LIKE ?", like, like)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	return q
}
