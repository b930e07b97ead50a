package repository

import (
	"context"
	"fmt"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mealFoodColumns = "meals.id AS meal_id, meals.meal_type, meals.created_at, " +
	"foods.id AS food_id, foods.name AS food_name, foods.calories AS food_calories"

// MealRepository handles meals and the meal_foods join table
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) mealsWithFoods(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("meals").
		Select(mealFoodColumns).
		Joins("LEFT JOIN meal_foods ON meal_foods.meal_id = meals.id").
		Joins("LEFT JOIN foods ON foods.id = meal_foods.food_id")
}

// ListWithFoods returns one row per (meal, food) pair across all days,
// plus one row with nil food columns for each meal without foods
func (r *MealRepository) ListWithFoods(ctx context.Context) ([]domain.MealFoodRow, error) {
	var rows []domain.MealFoodRow
	if err := r.mealsWithFoods(ctx).
		Order("meals.id ASC, foods.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return rows, nil
}

// ListWithFoodsForDay is ListWithFoods restricted to one day
func (r *MealRepository) ListWithFoodsForDay(ctx context.Context, dayID uint) ([]domain.MealFoodRow, error) {
	var rows []domain.MealFoodRow
	if err := r.mealsWithFoods(ctx).
		Where("meals.day_id = ?", dayID).
		Order("meals.id ASC, foods.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list meals for day %d: %w", dayID, err)
	}
	return rows, nil
}

func (r *MealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	if err := r.db.WithContext(ctx).Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

// FoodsForMeal returns the foods attached to mealID; empty when there are none
func (r *MealRepository) FoodsForMeal(ctx context.Context, mealID uint) ([]domain.MealFoodRow, error) {
	var rows []domain.MealFoodRow
	if err := r.db.WithContext(ctx).
		Table("meal_foods").
		Select(mealFoodColumns).
		Joins("JOIN foods ON meal_foods.food_id = foods.id").
		Joins("JOIN meals ON meal_foods.meal_id = meals.id").
		Where("meal_foods.meal_id = ?", mealID).
		Order("foods.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get foods for meal %d: %w", mealID, err)
	}
	return rows, nil
}

// AttachFood links a food to a meal. Attaching an already linked pair is a no-op.
func (r *MealRepository) AttachFood(ctx context.Context, mealID, foodID uint) error {
	link := domain.MealFood{MealID: mealID, FoodID: foodID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error; err != nil {
		return fmt.Errorf("failed to attach food %d to meal %d: %w", foodID, mealID, err)
	}
	return nil
}

// FindNames looks up the meal and food names of an attached pair
func (r *MealRepository) FindNames(ctx context.Context, mealID, foodID uint) (*domain.MealFoodNames, error) {
	var names []domain.MealFoodNames
	if err := r.db.WithContext(ctx).
		Table("meal_foods").
		Select("DISTINCT meals.meal_type AS meal_name, foods.name AS food_name").
		Joins("JOIN meals ON meal_foods.meal_id = meals.id").
		Joins("JOIN foods ON meal_foods.food_id = foods.id").
		Where("meal_foods.meal_id = ? AND meal_foods.food_id = ?", mealID, foodID).
		Limit(1).
		Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("failed to look up meal %d and food %d: %w", mealID, foodID, err)
	}
	if len(names) == 0 {
		return nil, nil
	}
	return &names[0], nil
}

// DetachFood removes every link between the meal and the food
func (r *MealRepository) DetachFood(ctx context.Context, mealID, foodID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("meal_id = ? AND food_id = ?", mealID, foodID).
		Delete(&domain.MealFood{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach food %d from meal %d: %w", foodID, mealID, result.Error)
	}
	return result.RowsAffected, nil
}
