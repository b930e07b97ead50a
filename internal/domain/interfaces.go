package domain

import (
	"context"
)

// FoodRepository handles food persistence
type FoodRepository interface {
	List(ctx context.Context) ([]Food, error)
	FindByID(ctx context.Context, id uint) ([]Food, error)
	Create(ctx context.Context, food *Food) error
	Update(ctx context.Context, id uint, name string, calories int) ([]Food, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// DayRepository handles day persistence
type DayRepository interface {
	List(ctx context.Context) ([]Day, error)
	Create(ctx context.Context, day *Day) error
	// Latest returns nil when no day exists
	Latest(ctx context.Context) (*Day, error)
}

// MealRepository handles meals and their food attachments
type MealRepository interface {
	ListWithFoods(ctx context.Context) ([]MealFoodRow, error)
	ListWithFoodsForDay(ctx context.Context, dayID uint) ([]MealFoodRow, error)
	Create(ctx context.Context, meal *Meal) error
	FoodsForMeal(ctx context.Context, mealID uint) ([]MealFoodRow, error)
	AttachFood(ctx context.Context, mealID, foodID uint) error
	// FindNames returns nil when the pair is not attached
	FindNames(ctx context.Context, mealID, foodID uint) (*MealFoodNames, error)
	DetachFood(ctx context.Context, mealID, foodID uint) (int64, error)
}
