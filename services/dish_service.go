package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Malav2364/calorify/models"
	"github.com/Malav2364/calorify/utils"

	"gorm.io/gorm"
)

type DishService struct {
	db *gorm.DB
}

func NewDishService(db *gorm.DB) *DishService {
	return &DishService{db: db}
}

// List returns every dish owned by the user, newest first.
func (s *DishService) List(userID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&dishes).Error
	return dishes, err
}

// ListByDay restricts the listing to the UTC calendar day containing day.
func (s *DishService) ListByDay(userID uint, day time.Time) ([]models.Dish, error) {
	start, end := utils.DayWindowUTC(day)
	var dishes []models.Dish
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at desc").
		Find(&dishes).Error
	return dishes, err
}

func (s *DishService) Add(userID uint, name string, calories float64) (*models.Dish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: dish name is required", ErrInvalidInput)
	}
	if err := validCalories(calories); err != nil {
		return nil, err
	}

	dish := models.Dish{UserID: userID, Name: name, Calories: calories}
	if err := s.db.Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// Get fetches a dish after the ownership check.
func (s *DishService) Get(dishID, userID uint) (*models.Dish, error) {
	return s.findOwned(dishID, userID)
}

// DishPatch carries a partial update; nil fields are left untouched.
type DishPatch struct {
	Name     *string
	Calories *float64
}

func (s *DishService) Update(dishID, userID uint, patch DishPatch) (*models.Dish, error) {
	if patch.Name == nil && patch.Calories == nil {
		return nil, fmt.Errorf("%w: at least one of name or calories must be provided", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: dish name cannot be empty", ErrInvalidInput)
	}
	if patch.Calories != nil {
		if err := validCalories(*patch.Calories); err != nil {
			return nil, err
		}
	}

	dish, err := s.findOwned(dishID, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		dish.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Calories != nil {
		dish.Calories = *patch.Calories
	}

	if err := s.db.Save(dish).Error; err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) Delete(dishID, userID uint) error {
	dish, err := s.findOwned(dishID, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(dish).Error
}

// findOwned enforces row-level ownership: unknown ids are ErrNotFound,
// someone else's dish is ErrForbidden. Every read/update/delete goes
// through here before touching the row.
func (s *DishService) findOwned(dishID, userID uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.db.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if dish.UserID != userID {
		return nil, fmt.Errorf("%w: this dish doesn't belong to you", ErrForbidden)
	}
	return &dish, nil
}

func validCalories(calories float64) error {
	if math.IsNaN(calories) || math.IsInf(calories, 0) || calories < 0 {
		return fmt.Errorf("%w: calories must be a non-negative number", ErrInvalidInput)
	}
	return nil
}
