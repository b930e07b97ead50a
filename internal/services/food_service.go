package services

import (
	"context"
	"fmt"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
)

type FoodService struct {
	repo domain.FoodRepository
}

func NewFoodService(repo domain.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

func (s *FoodService) List(ctx context.Context) ([]domain.Food, error) {
	foods, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "Could not list foods")
	}
	return foods, nil
}

// Get returns the food as a one-element list
func (s *FoodService) Get(ctx context.Context, id uint) ([]domain.Food, error) {
	foods, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, fmt.Sprintf("Could not get food with id %d", id))
	}
	if len(foods) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Could not find food with id %d", id)).
			WithContext("food_id", id)
	}
	return foods, nil
}

func (s *FoodService) Create(ctx context.Context, body Payload) ([]domain.Food, error) {
	food, err := foodFromPayload(body)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &food); err != nil {
		return nil, apperrors.NewDatabaseError(err, "Could not create food")
	}
	return []domain.Food{food}, nil
}

// Update replaces name and calories; it returns the rows that were changed
func (s *FoodService) Update(ctx context.Context, id uint, body Payload) ([]domain.Food, error) {
	food, err := foodFromPayload(body)
	if err != nil {
		return nil, err
	}
	foods, err := s.repo.Update(ctx, id, food.Name, food.Calories)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, fmt.Sprintf("Could not update food with id %d", id))
	}
	return foods, nil
}

// Delete succeeds only when exactly one row was removed
func (s *FoodService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.NewDatabaseError(err, fmt.Sprintf("Could not delete food with id %d", id))
	}
	if deleted != 1 {
		return apperrors.NewNotFoundError(fmt.Sprintf("Could not find food with id %d", id)).
			WithContext("rows_deleted", deleted)
	}
	return nil
}

func foodFromPayload(body Payload) (domain.Food, error) {
	if err := foodFields.Check(body); err != nil {
		return domain.Food{}, err
	}
	name, err := stringField(body, "name")
	if err != nil {
		return domain.Food{}, err
	}
	calories, err := intField(body, "calories")
	if err != nil {
		return domain.Food{}, err
	}
	return domain.Food{Name: name, Calories: calories}, nil
}
