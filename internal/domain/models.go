package domain

import (
	"time"
)

// Food is a named item with a calorie count
type Food struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;not null" json:"name"`
	Calories int    `gorm:"column:calories;not null" json:"calories"`
}

func (Food) TableName() string {
	return "foods"
}

// Day is a tracked day with a calorie goal
type Day struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Goal      int       `gorm:"column:goal;not null" json:"goal"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Day) TableName() string {
	return "days"
}

// Meal is a meal slot (breakfast, lunch, ...) belonging to a day
type Meal struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	MealType  string    `gorm:"column:meal_type;not null" json:"meal_type"`
	DayID     uint      `gorm:"column:day_id" json:"day_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Meal) TableName() string {
	return "meals"
}

// MealFood records that a food was eaten as part of a meal
type MealFood struct {
	MealID uint `gorm:"column:meal_id" json:"meal_id"`
	FoodID uint `gorm:"column:food_id" json:"food_id"`
}

func (MealFood) TableName() string {
	return "meal_foods"
}

// MealFoodRow is one row of meals LEFT JOIN meal_foods LEFT JOIN foods.
// Food columns are nil for meals without attached foods.
type MealFoodRow struct {
	MealID       uint
	MealType     string
	CreatedAt    time.Time
	FoodID       *uint
	FoodName     *string
	FoodCalories *int
}

// MealFoodNames is the joined (meal, food) name pair for one attachment
type MealFoodNames struct {
	MealName string
	FoodName string
}

// MealWithFoods is a meal with its attached foods. Date is only set on the
// cross-day listing.
type MealWithFoods struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Date  *time.Time `json:"date,omitempty"`
	Foods []Food     `json:"foods"`
}

// MealFoods lists the foods attached to a single meal
type MealFoods struct {
	ID    uint   `json:"id"`
	Meal  string `json:"meal"`
	Foods []Food `json:"foods"`
}
