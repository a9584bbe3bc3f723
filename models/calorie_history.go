package models

import (
	"time"

	"gorm.io/gorm"
)

// CalorieHistory stores one finalized day per user. Date is normalized to
// UTC midnight and the composite index keeps writes upsert-only.
type CalorieHistory struct {
	gorm.Model
	UserID   uint      `gorm:"uniqueIndex:idx_user_date;not null" json:"userId"`
	Date     time.Time `gorm:"uniqueIndex:idx_user_date;not null" json:"date"`
	Calories float64   `json:"calories"`
	Target   int       `json:"target"`
}
