package services

import (
	"context"
	"errors"

	"github.com/vladimiradmaev/quantified-self/internal/domain"
)

var errStore = errors.New("connection refused")

type fakeFoodRepo struct {
	foods   []domain.Food
	nextID  uint
	err     error
}

func (r *fakeFoodRepo) List(ctx context.Context) ([]domain.Food, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Food, 0, len(r.foods))
	for i := len(r.foods) - 1; i >= 0; i-- {
		out = append(out, r.foods[i])
	}
	return out, nil
}

func (r *fakeFoodRepo) FindByID(ctx context.Context, id uint) ([]domain.Food, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Food{}
	for _, f := range r.foods {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFoodRepo) Create(ctx context.Context, food *domain.Food) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	food.ID = r.nextID
	r.foods = append(r.foods, *food)
	return nil
}

func (r *fakeFoodRepo) Update(ctx context.Context, id uint, name string, calories int) ([]domain.Food, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Food{}
	for i := range r.foods {
		if r.foods[i].ID == id {
			r.foods[i].Name = name
			r.foods[i].Calories = calories
			out = append(out, r.foods[i])
		}
	}
	return out, nil
}

func (r *fakeFoodRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	kept := r.foods[:0]
	var n int64
	for _, f := range r.foods {
		if f.ID == id {
			n++
			continue
		}
		kept = append(kept, f)
	}
	r.foods = kept
	return n, nil
}

type fakeDayRepo struct {
	days []domain.Day
	err  error
}

func (r *fakeDayRepo) List(ctx context.Context) ([]domain.Day, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.Day{}, r.days...), nil
}

func (r *fakeDayRepo) Create(ctx context.Context, day *domain.Day) error {
	if r.err != nil {
		return r.err
	}
	day.ID = uint(len(r.days) + 1)
	r.days = append(r.days, *day)
	return nil
}

func (r *fakeDayRepo) Latest(ctx context.Context) (*domain.Day, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.days) == 0 {
		return nil, nil
	}
	d := r.days[len(r.days)-1]
	return &d, nil
}

// fakeMealRepo keeps meals, foods and links in memory and builds joined
// rows the way the SQL queries do.
type fakeMealRepo struct {
	meals []domain.Meal
	foods map[uint]domain.Food
	links []domain.MealFood
	err   error
	// dropAfterAttach simulates a concurrent detach between insert and lookup
	dropAfterAttach bool
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{foods: make(map[uint]domain.Food)}
}

func (r *fakeMealRepo) rows(filter func(domain.Meal) bool) []domain.MealFoodRow {
	var rows []domain.MealFoodRow
	for _, m := range r.meals {
		if !filter(m) {
			continue
		}
		matched := false
		for _, l := range r.links {
			if l.MealID != m.ID {
				continue
			}
			f, ok := r.foods[l.FoodID]
			if !ok {
				continue
			}
			matched = true
			id, name, cal := f.ID, f.Name, f.Calories
			rows = append(rows, domain.MealFoodRow{
				MealID: m.ID, MealType: m.MealType, CreatedAt: m.CreatedAt,
				FoodID: &id, FoodName: &name, FoodCalories: &cal,
			})
		}
		if !matched {
			rows = append(rows, domain.MealFoodRow{MealID: m.ID, MealType: m.MealType, CreatedAt: m.CreatedAt})
		}
	}
	return rows
}

func (r *fakeMealRepo) ListWithFoods(ctx context.Context) ([]domain.MealFoodRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows(func(domain.Meal) bool { return true }), nil
}

func (r *fakeMealRepo) ListWithFoodsForDay(ctx context.Context, dayID uint) ([]domain.MealFoodRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows(func(m domain.Meal) bool { return m.DayID == dayID }), nil
}

func (r *fakeMealRepo) Create(ctx context.Context, meal *domain.Meal) error {
	if r.err != nil {
		return r.err
	}
	meal.ID = uint(len(r.meals) + 1)
	r.meals = append(r.meals, *meal)
	return nil
}

func (r *fakeMealRepo) FoodsForMeal(ctx context.Context, mealID uint) ([]domain.MealFoodRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.MealFoodRow
	for _, row := range r.rows(func(m domain.Meal) bool { return m.ID == mealID }) {
		if row.FoodID != nil {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeMealRepo) AttachFood(ctx context.Context, mealID, foodID uint) error {
	if r.err != nil {
		return r.err
	}
	if !r.dropAfterAttach {
		r.links = append(r.links, domain.MealFood{MealID: mealID, FoodID: foodID})
	}
	return nil
}

func (r *fakeMealRepo) FindNames(ctx context.Context, mealID, foodID uint) (*domain.MealFoodNames, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, l := range r.links {
		if l.MealID != mealID || l.FoodID != foodID {
			continue
		}
		f, ok := r.foods[foodID]
		if !ok {
			continue
		}
		for _, m := range r.meals {
			if m.ID == mealID {
				return &domain.MealFoodNames{MealName: m.MealType, FoodName: f.Name}, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeMealRepo) DetachFood(ctx context.Context, mealID, foodID uint) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	kept := r.links[:0]
	var n int64
	for _, l := range r.links {
		if l.MealID == mealID && l.FoodID == foodID {
			n++
			continue
		}
		kept = append(kept, l)
	}
	r.links = kept
	return n, nil
}
