package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Malav2364/calorify/models"
	"github.com/Malav2364/calorify/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Height        *float64
	Weight        *float64
	Gender        string
	ActivityLevel string
}

func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if !ValidGender(input.Gender) {
		return nil, fmt.Errorf("%w: gender must be Male, Female, or Other", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	activity := input.ActivityLevel
	if activity == "" {
		activity = "Moderate"
	}

	user := models.User{
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Password:      hashed,
		Name:          input.Name,
		Height:        input.Height,
		Weight:        input.Weight,
		Gender:        input.Gender,
		ActivityLevel: activity,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies the credentials and issues a signed token.
func (s *AuthService) Authenticate(email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
