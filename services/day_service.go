package services

import (
	"time"

	"github.com/Malav2364/calorify/models"
	"github.com/Malav2364/calorify/utils"

	"gorm.io/gorm"
)

// DaySummary is the result of closing a day.
type DaySummary struct {
	TotalConsumed  float64 `json:"totalConsumed"`
	EntriesDeleted int64   `json:"entriesDeleted"`
	Target         int     `json:"target"`
}

// DayService finalizes "today" for a user: it sums the day's ledger,
// commits the history row, and clears the ledger.
type DayService struct {
	db      *gorm.DB
	history *HistoryService
	now     func() time.Time
}

func NewDayService(db *gorm.DB, history *HistoryService) *DayService {
	return &DayService{db: db, history: history, now: time.Now}
}

// CloseDay runs the whole close as one transaction. The history upsert must
// succeed before any ledger row is deleted; on failure the ledger is left
// untouched. The target is recomputed from the live profile at close time.
func (s *DayService) CloseDay(user *models.User) (*DaySummary, error) {
	start, end := utils.DayWindowUTC(s.now())
	target := utils.DailyCalorieTarget(user.Weight, user.Height, user.Gender, user.ActivityLevel)

	var summary DaySummary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var dishes []models.Dish
		err := tx.
			Where("user_id = ? AND created_at >= ? AND created_at < ?", user.ID, start, end).
			Find(&dishes).Error
		if err != nil {
			return err
		}

		var total float64
		ids := make([]uint, 0, len(dishes))
		for _, d := range dishes {
			total += d.Calories
			ids = append(ids, d.ID)
		}

		if err := s.history.recordDay(tx, user.ID, start, total, target); err != nil {
			return err
		}

		summary = DaySummary{TotalConsumed: total, Target: target}
		if len(ids) == 0 {
			return nil
		}

		// Delete exactly the rows that were summed; a dish committed
		// after the select stays in the ledger for the next close.
		res := tx.Delete(&models.Dish{}, ids)
		if res.Error != nil {
			return res.Error
		}
		summary.EntriesDeleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
