package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
	"github.com/vladimiradmaev/quantified-self/internal/interfaces"
)

var (
	listDaysStatus  = statusCodes{store: http.StatusBadRequest}
	createDayStatus = statusCodes{validation: http.StatusUnprocessableEntity, store: http.StatusBadRequest}
	todayStatus     = statusCodes{notFound: http.StatusNotFound, store: http.StatusBadRequest}
)

// DayHandler serves /days and /today
type DayHandler struct {
	days interfaces.DayServiceInterface
	errs *apperrors.Handler
}

// NewDayHandler creates a new day handler
func NewDayHandler(deps Dependencies) *DayHandler {
	return &DayHandler{days: deps.DaySvc, errs: deps.Errors}
}

// List handles GET /days
func (h *DayHandler) List(c *gin.Context) {
	days, err := h.days.List(c.Request.Context())
	if err != nil {
		writeError(c, h.errs, err, listDaysStatus)
		return
	}
	c.JSON(http.StatusOK, days)
}

// Create handles POST /days
func (h *DayHandler) Create(c *gin.Context) {
	body, err := bindPayload(c)
	if err != nil {
		badBody(c, err)
		return
	}
	day, err := h.days.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, h.errs, err, createDayStatus)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"day": day})
}

// Today handles GET /today
func (h *DayHandler) Today(c *gin.Context) {
	day, err := h.days.Today(c.Request.Context())
	if err != nil {
		writeError(c, h.errs, err, todayStatus)
		return
	}
	c.JSON(http.StatusOK, day)
}
