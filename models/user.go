package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Password      string   `gorm:"not null" json:"-"`
	Name          string   `json:"name"`
	Height        *float64 `json:"height"` // cm
	Weight        *float64 `json:"weight"` // kg
	Gender        string   `json:"gender"` // "Male" | "Female" | "Other"
	ActivityLevel string   `json:"activityLevel"`
}
