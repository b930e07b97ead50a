package repository

import (
	"context"
	"fmt"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoodRepository handles food data operations
type FoodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// List returns all foods, newest first
func (r *FoodRepository) List(ctx context.Context) ([]domain.Food, error) {
	foods := []domain.Food{}
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

// FindByID returns the foods matching id; the slice is empty when none does
func (r *FoodRepository) FindByID(ctx context.Context, id uint) ([]domain.Food, error) {
	foods := []domain.Food{}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	return foods, nil
}

func (r *FoodRepository) Create(ctx context.Context, food *domain.Food) error {
	if err := r.db.WithContext(ctx).Create(food).Error; err != nil {
		return fmt.Errorf("failed to create food: %w", err)
	}
	return nil
}

// Update overwrites name and calories and returns the updated rows
func (r *FoodRepository) Update(ctx context.Context, id uint, name string, calories int) ([]domain.Food, error) {
	foods := []domain.Food{}
	err := r.db.WithContext(ctx).
		Model(&foods).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     name,
			"calories": calories,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}
	return foods, nil
}

// Delete removes the food and reports how many rows went away
func (r *FoodRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Food{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete food: %w", result.Error)
	}
	return result.RowsAffected, nil
}
