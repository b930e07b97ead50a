package repository

import (
	"context"
	"fmt"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
	"gorm.io/gorm"
)

// DayRepository handles day data operations
type DayRepository struct {
	db *gorm.DB
}

// NewDayRepository creates a new day repository
func NewDayRepository(db *gorm.DB) *DayRepository {
	return &DayRepository{db: db}
}

// List returns all days in insertion order
func (r *DayRepository) List(ctx context.Context) ([]domain.Day, error) {
	days := []domain.Day{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&days).Error; err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	return days, nil
}

func (r *DayRepository) Create(ctx context.Context, day *domain.Day) error {
	if err := r.db.WithContext(ctx).Create(day).Error; err != nil {
		return fmt.Errorf("failed to create day: %w", err)
	}
	return nil
}

// Latest returns the most recently created day, or nil if there is none
func (r *DayRepository) Latest(ctx context.Context) (*domain.Day, error) {
	var days []domain.Day
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(1).Find(&days).Error; err != nil {
		return nil, fmt.Errorf("failed to get latest day: %w", err)
	}
	if len(days) == 0 {
		return nil, nil
	}
	return &days[0], nil
}
