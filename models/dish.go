package models

import (
	"gorm.io/gorm"
)

// Dish is one logged food entry. Rows live in the working ledger until the
// day is closed, then they are cleared into CalorieHistory.
type Dish struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"userId"`
	Name     string  `gorm:"not null" json:"name"`
	Calories float64 `gorm:"not null" json:"calories"`
}
