package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the resource routes on rg (normally /api/v1)
func RegisterRoutes(rg *gin.RouterGroup, deps Dependencies) {
	foods := NewFoodHandler(deps)
	days := NewDayHandler(deps)
	meals := NewMealHandler(deps)

	rg.GET("/foods", foods.List)
	rg.GET("/foods/:id", foods.Get)
	rg.POST("/foods", foods.Create)
	rg.PATCH("/foods/:id", foods.Update)
	rg.DELETE("/foods/:id", foods.Delete)

	rg.GET("/days", days.List)
	rg.POST("/days", days.Create)
	rg.GET("/today", days.Today)

	rg.GET("/days/:id/meals", meals.ForDay)
	rg.POST("/days/:id/meals", meals.CreateForDay)
	rg.GET("/meals", meals.List)
	rg.GET("/meals/:meal_id/foods", meals.Foods)
	rg.POST("/meals/:meal_id/foods/:food_id", meals.AttachFood)
	rg.DELETE("/meals/:meal_id/foods/:food_id", meals.DetachFood)
}
