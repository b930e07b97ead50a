package services

import (
	"context"
	"fmt"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
)

type MealService struct {
	repo domain.MealRepository
}

func NewMealService(repo domain.MealRepository) *MealService {
	return &MealService{repo: repo}
}

// List returns every meal with its foods and creation date
func (s *MealService) List(ctx context.Context) ([]domain.MealWithFoods, error) {
	rows, err := s.repo.ListWithFoods(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "Could not list meals")
	}
	return groupMeals(rows, true), nil
}

// ForDay returns the meals of one day, ordered by meal id
func (s *MealService) ForDay(ctx context.Context, dayID uint) ([]domain.MealWithFoods, error) {
	rows, err := s.repo.ListWithFoodsForDay(ctx, dayID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, fmt.Sprintf("Could not list meals for day %d", dayID))
	}
	return groupMeals(rows, false), nil
}

func (s *MealService) CreateForDay(ctx context.Context, dayID uint, body Payload) ([]domain.Meal, error) {
	if err := mealFields.Check(body); err != nil {
		return nil, err
	}
	mealType, err := stringField(body, "meal_type")
	if err != nil {
		return nil, err
	}

	meal := domain.Meal{MealType: mealType, DayID: dayID}
	if err := s.repo.Create(ctx, &meal); err != nil {
		return nil, apperrors.NewDatabaseError(err, fmt.Sprintf("Could not create meal for day %d", dayID))
	}
	return []domain.Meal{meal}, nil
}

// FoodsForMeal lists the foods attached to a meal. A meal with no foods is
// reported as not found, since the meal name comes from the joined rows.
func (s *MealService) FoodsForMeal(ctx context.Context, mealID uint) (*domain.MealFoods, error) {
	rows, err := s.repo.FoodsForMeal(ctx, mealID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, fmt.Sprintf("Could not get foods for meal %d", mealID))
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No foods found for meal with id %d", mealID)).
			WithContext("meal_id", mealID)
	}

	meals := groupMeals(rows, false)
	return &domain.MealFoods{
		ID:    mealID,
		Meal:  meals[0].Name,
		Foods: meals[0].Foods,
	}, nil
}

// AttachFood links the food to the meal and returns a confirmation message
func (s *MealService) AttachFood(ctx context.Context, mealID, foodID uint) (string, error) {
	if err := s.repo.AttachFood(ctx, mealID, foodID); err != nil {
		return "", apperrors.NewDatabaseError(err, fmt.Sprintf("Could not add food %d to meal %d", foodID, mealID))
	}

	// The link may be gone again by now; nothing ties the two statements together.
	names, err := s.lookupNames(ctx, mealID, foodID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully added %s to %s.", names.FoodName, names.MealName), nil
}

// DetachFood removes every link between the meal and the food
func (s *MealService) DetachFood(ctx context.Context, mealID, foodID uint) (string, error) {
	names, err := s.lookupNames(ctx, mealID, foodID)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.DetachFood(ctx, mealID, foodID); err != nil {
		return "", apperrors.NewDatabaseError(err, fmt.Sprintf("Could not remove food %d from meal %d", foodID, mealID))
	}
	return fmt.Sprintf("Successfully removed %s from %s.", names.FoodName, names.MealName), nil
}

func (s *MealService) lookupNames(ctx context.Context, mealID, foodID uint) (*domain.MealFoodNames, error) {
	names, err := s.repo.FindNames(ctx, mealID, foodID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, fmt.Sprintf("Could not look up meal %d and food %d", mealID, foodID))
	}
	if names == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Meal %d or food %d does not exist, or they are not linked", mealID, foodID)).
			WithContext("meal_id", mealID).
			WithContext("food_id", foodID)
	}
	return names, nil
}

// groupMeals folds joined rows into one entry per meal, in first-seen order.
// Rows with a nil food only register the meal; a food already seen for the
// meal is not appended twice.
func groupMeals(rows []domain.MealFoodRow, withDate bool) []domain.MealWithFoods {
	meals := make([]domain.MealWithFoods, 0)
	index := make(map[uint]int)
	seen := make(map[uint]map[uint]struct{})

	for _, row := range rows {
		i, ok := index[row.MealID]
		if !ok {
			meal := domain.MealWithFoods{
				ID:    row.MealID,
				Name:  row.MealType,
				Foods: []domain.Food{},
			}
			if withDate {
				created := row.CreatedAt
				meal.Date = &created
			}
			meals = append(meals, meal)
			i = len(meals) - 1
			index[row.MealID] = i
			seen[row.MealID] = make(map[uint]struct{})
		}

		if row.FoodID == nil || row.FoodName == nil {
			continue
		}
		if _, dup := seen[row.MealID][*row.FoodID]; dup {
			continue
		}
		seen[row.MealID][*row.FoodID] = struct{}{}

		food := domain.Food{ID: *row.FoodID, Name: *row.FoodName}
		if row.FoodCalories != nil {
			food.Calories = *row.FoodCalories
		}
		meals[i].Foods = append(meals[i].Foods, food)
	}

	return meals
}
