package services

import (
	"errors"
	"fmt"

	"github.com/Malav2364/calorify/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the mutable profile fields; nil means "leave as is".
type ProfileUpdate struct {
	Name          *string
	Height        *float64
	Weight        *float64
	Gender        *string
	ActivityLevel *string
}

func (s *UserService) UpdateProfile(user *models.User, patch ProfileUpdate) (*models.User, error) {
	if patch.Gender != nil && !ValidGender(*patch.Gender) {
		return nil, fmt.Errorf("%w: gender must be Male, Female, or Other", ErrInvalidInput)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Height != nil {
		user.Height = patch.Height
	}
	if patch.Weight != nil {
		user.Weight = patch.Weight
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.ActivityLevel != nil {
		user.ActivityLevel = *patch.ActivityLevel
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func ValidGender(gender string) bool {
	switch gender {
	case "Male", "Female", "Other":
		return true
	}
	return false
}
