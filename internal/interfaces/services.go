package interfaces

import (
	"context"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
	"github.com/vladimiradmaev/quantified-self/internal/services"
)

// FoodServiceInterface defines the contract for food operations
type FoodServiceInterface interface {
	List(ctx context.Context) ([]domain.Food, error)
	Get(ctx context.Context, id uint) ([]domain.Food, error)
	Create(ctx context.Context, body services.Payload) ([]domain.Food, error)
	Update(ctx context.Context, id uint, body services.Payload) ([]domain.Food, error)
	Delete(ctx context.Context, id uint) error
}

// DayServiceInterface defines the contract for day operations
type DayServiceInterface interface {
	List(ctx context.Context) ([]domain.Day, error)
	Create(ctx context.Context, body services.Payload) ([]domain.Day, error)
	Today(ctx context.Context) (*domain.Day, error)
}

// MealServiceInterface defines the contract for meal operations
type MealServiceInterface interface {
	List(ctx context.Context) ([]domain.MealWithFoods, error)
	ForDay(ctx context.Context, dayID uint) ([]domain.MealWithFoods, error)
	CreateForDay(ctx context.Context, dayID uint, body services.Payload) ([]domain.Meal, error)
	FoodsForMeal(ctx context.Context, mealID uint) (*domain.MealFoods, error)
	AttachFood(ctx context.Context, mealID, foodID uint) (string, error)
	DetachFood(ctx context.Context, mealID, foodID uint) (string, error)
}

// HealthChecker reports whether the store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}
