package services

import (
	"context"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
)

type DayService struct {
	repo domain.DayRepository
}

func NewDayService(repo domain.DayRepository) *DayService {
	return &DayService{repo: repo}
}

func (s *DayService) List(ctx context.Context) ([]domain.Day, error) {
	days, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "Could not list days")
	}
	return days, nil
}

func (s *DayService) Create(ctx context.Context, body Payload) ([]domain.Day, error) {
	if err := dayFields.Check(body); err != nil {
		return nil, err
	}
	goal, err := intField(body, "goal")
	if err != nil {
		return nil, err
	}

	day := domain.Day{Goal: goal}
	if err := s.repo.Create(ctx, &day); err != nil {
		return nil, apperrors.NewDatabaseError(err, "Could not create day")
	}
	return []domain.Day{day}, nil
}

// Today returns the most recently created day
func (s *DayService) Today(ctx context.Context) (*domain.Day, error) {
	day, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err, "Could not get today")
	}
	if day == nil {
		return nil, apperrors.NewNotFoundError("No days exist")
	}
	return day, nil
}
