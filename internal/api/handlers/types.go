package handlers

import (
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
	"github.com/vladimiradmaev/quantified-self/internal/interfaces"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	FoodSvc interfaces.FoodServiceInterface
	DaySvc  interfaces.DayServiceInterface
	MealSvc interfaces.MealServiceInterface
	Errors  *apperrors.Handler
}

// statusCodes maps error kinds to the HTTP status a single route answers
// with. Routes differ on purpose and clients rely on the exact codes.
type statusCodes struct {
	validation int
	notFound   int
	store      int // store failures and values the store would reject
}
