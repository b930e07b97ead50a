package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
	"github.com/vladimiradmaev/quantified-self/internal/interfaces"
)

var (
	listFoodsStatus  = statusCodes{store: http.StatusBadRequest}
	getFoodStatus    = statusCodes{notFound: http.StatusNotFound, store: http.StatusInternalServerError}
	createFoodStatus = statusCodes{validation: http.StatusUnprocessableEntity, store: http.StatusBadRequest}
	updateFoodStatus = statusCodes{validation: http.StatusBadRequest, store: http.StatusBadRequest}
	deleteFoodStatus = statusCodes{notFound: http.StatusNotFound, store: http.StatusNotFound}
)

// FoodHandler serves /foods
type FoodHandler struct {
	foods interfaces.FoodServiceInterface
	errs  *apperrors.Handler
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(deps Dependencies) *FoodHandler {
	return &FoodHandler{foods: deps.FoodSvc, errs: deps.Errors}
}

// List handles GET /foods
func (h *FoodHandler) List(c *gin.Context) {
	foods, err := h.foods.List(c.Request.Context())
	if err != nil {
		writeError(c, h.errs, err, listFoodsStatus)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Get handles GET /foods/:id
func (h *FoodHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, h.errs, err, getFoodStatus)
		return
	}
	foods, err := h.foods.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.errs, err, getFoodStatus)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Create handles POST /foods
func (h *FoodHandler) Create(c *gin.Context) {
	body, err := bindPayload(c)
	if err != nil {
		badBody(c, err)
		return
	}
	food, err := h.foods.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, h.errs, err, createFoodStatus)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"food": food})
}

// Update handles PATCH /foods/:id
func (h *FoodHandler) Update(c *gin.Context) {
	body, err := bindPayload(c)
	if err != nil {
		badBody(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, h.errs, err, updateFoodStatus)
		return
	}
	food, err := h.foods.Update(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, h.errs, err, updateFoodStatus)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": food})
}

// Delete handles DELETE /foods/:id
func (h *FoodHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, h.errs, err, deleteFoodStatus)
		return
	}
	if err := h.foods.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.errs, err, deleteFoodStatus)
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"success": true})
}
