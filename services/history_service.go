package services

import (
	"time"

	"github.com/Malav2364/calorify/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// RecordDay upserts the (user, date) history row in a single statement.
func (s *HistoryService) RecordDay(userID uint, date time.Time, consumed float64, target int) error {
	return s.recordDay(s.db, userID, date, consumed, target)
}

// recordDay runs against the given handle so the day-close aggregator can
// call it inside its transaction.
func (s *HistoryService) recordDay(db *gorm.DB, userID uint, date time.Time, consumed float64, target int) error {
	entry := models.CalorieHistory{
		UserID:   userID,
		Date:     date,
		Calories: consumed,
		Target:   target,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "target", "updated_at"}),
	}).Create(&entry).Error
}

// maxHistoryLimit caps a read at one year of closed days.
const maxHistoryLimit = 365

// List returns the most recent closed days, newest first.
func (s *HistoryService) List(userID uint, limit int) ([]models.CalorieHistory, error) {
	if limit <= 0 {
		limit = 30
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	var history []models.CalorieHistory
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&history).Error
	return history, err
}
