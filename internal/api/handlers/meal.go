package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
	"github.com/vladimiradmaev/quantified-self/internal/interfaces"
)

var (
	listMealsStatus  = statusCodes{store: http.StatusBadRequest}
	dayMealsStatus   = statusCodes{store: http.StatusBadRequest}
	createMealStatus = statusCodes{validation: http.StatusUnprocessableEntity, store: http.StatusBadRequest}
	mealFoodsStatus  = statusCodes{notFound: http.StatusNotFound, store: http.StatusNotFound}
	attachFoodStatus = statusCodes{notFound: http.StatusNotFound, store: http.StatusNotFound}
	detachFoodStatus = statusCodes{notFound: http.StatusNotFound, store: http.StatusNotFound}
)

// MealHandler serves /meals and /days/:id/meals
type MealHandler struct {
	meals interfaces.MealServiceInterface
	errs  *apperrors.Handler
}

// NewMealHandler creates a new meal handler
func NewMealHandler(deps Dependencies) *MealHandler {
	return &MealHandler{meals: deps.MealSvc, errs: deps.Errors}
}

// List handles GET /meals
func (h *MealHandler) List(c *gin.Context) {
	meals, err := h.meals.List(c.Request.Context())
	if err != nil {
		writeError(c, h.errs, err, listMealsStatus)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// ForDay handles GET /days/:id/meals
func (h *MealHandler) ForDay(c *gin.Context) {
	dayID, err := pathID(c, "id")
	if err != nil {
		writeError(c, h.errs, err, dayMealsStatus)
		return
	}
	meals, err := h.meals.ForDay(c.Request.Context(), dayID)
	if err != nil {
		writeError(c, h.errs, err, dayMealsStatus)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// CreateForDay handles POST /days/:id/meals
func (h *MealHandler) CreateForDay(c *gin.Context) {
	body, err := bindPayload(c)
	if err != nil {
		badBody(c, err)
		return
	}
	dayID, err := pathID(c, "id")
	if err != nil {
		writeError(c, h.errs, err, createMealStatus)
		return
	}
	meal, err := h.meals.CreateForDay(c.Request.Context(), dayID, body)
	if err != nil {
		writeError(c, h.errs, err, createMealStatus)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// Foods handles GET /meals/:meal_id/foods
func (h *MealHandler) Foods(c *gin.Context) {
	mealID, err := pathID(c, "meal_id")
	if err != nil {
		writeError(c, h.errs, err, mealFoodsStatus)
		return
	}
	foods, err := h.meals.FoodsForMeal(c.Request.Context(), mealID)
	if err != nil {
		writeError(c, h.errs, err, mealFoodsStatus)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// AttachFood handles POST /meals/:meal_id/foods/:food_id
func (h *MealHandler) AttachFood(c *gin.Context) {
	mealID, foodID, ok := h.pair(c, attachFoodStatus)
	if !ok {
		return
	}
	message, err := h.meals.AttachFood(c.Request.Context(), mealID, foodID)
	if err != nil {
		writeError(c, h.errs, err, attachFoodStatus)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// DetachFood handles DELETE /meals/:meal_id/foods/:food_id
func (h *MealHandler) DetachFood(c *gin.Context) {
	mealID, foodID, ok := h.pair(c, detachFoodStatus)
	if !ok {
		return
	}
	message, err := h.meals.DetachFood(c.Request.Context(), mealID, foodID)
	if err != nil {
		writeError(c, h.errs, err, detachFoodStatus)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *MealHandler) pair(c *gin.Context, codes statusCodes) (uint, uint, bool) {
	mealID, err := pathID(c, "meal_id")
	if err != nil {
		writeError(c, h.errs, err, codes)
		return 0, 0, false
	}
	foodID, err := pathID(c, "food_id")
	if err != nil {
		writeError(c, h.errs, err, codes)
		return 0, 0, false
	}
	return mealID, foodID, true
}
